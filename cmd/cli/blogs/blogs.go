package blogs

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
// Init Blogs
// ==========================
func InitBlogs(rootCmd *cobra.Command) {
	blogsCmd := &cobra.Command{
		Use:   "blogs",
		Short: "List, create and delete blogs",
	}

	blogsCmd.AddCommand(
		listBlogsCmd(),
		createBlogCmd(),
		deleteBlogCmd(),
	)

	rootCmd.AddCommand(blogsCmd)
}

// ==========================
// LIST
// ==========================
func listBlogsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List blogs with their comment counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			var blogs []models.Blog
			if err := client.New().JSON(cmd.Context(), http.MethodGet, "/blogs", nil, &blogs); err != nil {
				return err
			}

			if asJSON {
				return output.PrintJSON(cmd.OutOrStdout(), blogs)
			}

			rows := make([][]interface{}, 0, len(blogs))
			for _, b := range blogs {
				rows = append(rows, []interface{}{b.ID, b.Title, output.AuthorLabel(b.AuthorID), len(b.Comments)})
			}
			output.RenderTable(cmd.OutOrStdout(), []string{"ID", "Title", "Author", "Comments"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")
	return cmd
}

// ==========================
// CREATE
// ==========================
func createBlogCmd() *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a blog as the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.Authenticated()
			if err != nil {
				return err
			}

			var b models.Blog
			payload := map[string]string{"title": title, "content": content}
			if err := c.JSON(cmd.Context(), http.MethodPost, "/blogs/new", payload, &b); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Blog %d created\n", b.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "blog title")
	cmd.Flags().StringVar(&content, "content", "", "blog content")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("content")
	return cmd
}

// ==========================
// DELETE
// ==========================
func deleteBlogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete one of your blogs and its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid blog id %q", args[0])
			}
			c, err := client.Authenticated()
			if err != nil {
				return err
			}

			if err := c.JSON(cmd.Context(), http.MethodDelete, "/blogs/"+strconv.Itoa(id), nil, nil); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Blog %d deleted\n", id)
			return nil
		},
	}
}
