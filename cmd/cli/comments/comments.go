package comments

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/crucial707/blog-api/cmd/cli/client"
	"github.com/crucial707/blog-api/cmd/cli/output"
	"github.com/crucial707/blog-api/internal/models"
	"github.com/spf13/cobra"
)

// ==========================
// Init Comments
// ==========================
func InitComments(rootCmd *cobra.Command) {
	commentsCmd := &cobra.Command{
		Use:   "comments",
		Short: "List, add and delete comments",
	}

	commentsCmd.AddCommand(
		listCommentsCmd(),
		addCommentCmd(),
		deleteCommentCmd(),
	)

	rootCmd.AddCommand(commentsCmd)
}

func parseID(kind, s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", kind, s)
	}
	return id, nil
}

// ==========================
// LIST
// ==========================
func listCommentsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list [blog_id]",
		Short: "List the comments of a blog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blogID, err := parseID("blog", args[0])
			if err != nil {
				return err
			}

			var comments []models.Comment
			if err := client.New().JSON(cmd.Context(), http.MethodGet, "/comments/"+strconv.Itoa(blogID), nil, &comments); err != nil {
				return err
			}

			if asJSON {
				return output.PrintJSON(cmd.OutOrStdout(), comments)
			}

			rows := make([][]interface{}, 0, len(comments))
			for _, c := range comments {
				rows = append(rows, []interface{}{c.ID, c.Content, output.AuthorLabel(c.AuthorID)})
			}
			output.RenderTable(cmd.OutOrStdout(), []string{"ID", "Content", "Author"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")
	return cmd
}

// ==========================
// ADD
// ==========================
func addCommentCmd() *cobra.Command {
	var blogID int
	var content string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Comment on a blog as the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.Authenticated()
			if err != nil {
				return err
			}

			var out models.Comment
			payload := map[string]interface{}{"blog_id": blogID, "content": content}
			if err := c.JSON(cmd.Context(), http.MethodPost, "/comments", payload, &out); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Comment %d added to blog %d\n", out.ID, out.BlogID)
			return nil
		},
	}

	cmd.Flags().IntVar(&blogID, "blog-id", 0, "blog to comment on")
	cmd.Flags().StringVar(&content, "content", "", "comment text")
	cmd.MarkFlagRequired("blog-id")
	cmd.MarkFlagRequired("content")
	return cmd
}

// ==========================
// DELETE
// ==========================
func deleteCommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete one of your comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("comment", args[0])
			if err != nil {
				return err
			}
			c, err := client.Authenticated()
			if err != nil {
				return err
			}

			if err := c.JSON(cmd.Context(), http.MethodDelete, "/comments/"+strconv.Itoa(id), nil, nil); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Comment %d deleted\n", id)
			return nil
		},
	}
}
