package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vitrine/catalog/internal/domain"
	"github.com/vitrine/catalog/internal/pagination"
)

func newTagsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List, create and delete tags",
	}
	cmd.AddCommand(newTagsListCmd(a), newTagsCreateCmd(a), newTagsDeleteCmd(a))
	return cmd
}

func newTagsListCmd(a *app) *cobra.Command {
	var q domain.ListQuery
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.checkPerPage(q.PerPage); err != nil {
				return err
			}
			page, err := a.service(cmd).ListTags(q)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(page.Data) == 0 {
				fmt.Fprintln(out, "No tags found.")
			} else {
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tTITLE\tSLUG\tVIDEOS\t")
				for _, t := range page.Data {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d videos\t\n", t.ID, t.Title, t.Slug, t.AmountOfVideos)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}
			st := pagination.New(page.Items, page.PerPage, page.Page)
			fmt.Fprintln(out, st.Summary())
			return nil
		},
	}
	addListFlags(cmd, &q)
	return cmd
}

func newTagsCreateCmd(a *app) *cobra.Command {
	var d domain.TagDraft
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := a.service(cmd).CreateTag(d)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", tag.ID, tag.Slug)
			return nil
		},
	}
	cmd.Flags().StringVar(&d.Title, "title", "", "Tag title (at least 3 characters)")
	return cmd
}

func newTagsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.service(cmd).DeleteTag(args[0])
		},
	}
}

func addListFlags(cmd *cobra.Command, q *domain.ListQuery) {
	cmd.Flags().StringVarP(&q.Filter, "filter", "f", "", "Only entries containing this text")
	cmd.Flags().IntVarP(&q.Page, "page", "p", 1, "Page number")
	cmd.Flags().IntVar(&q.PerPage, "per-page", 0, "Rows per page (default from configuration)")
}

func (a *app) checkPerPage(n int) error {
	if n == 0 || pagination.Allowed(n, a.cfg.PageSizes) {
		return nil
	}
	return fmt.Errorf("rows per page must be one of %v, got %d", a.cfg.PageSizes, n)
}
