package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/bootstrap"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var stateDir string

	root := &cobra.Command{
		Use:           "xunews",
		Short:         "XU-News-AI-RAG knowledge base client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&stateDir, "state-dir", "", "state directory (default ~/.xunews)")

	root.AddCommand(newTUICmd(&stateDir))
	root.AddCommand(newLoginCmd(&stateDir))
	root.AddCommand(newRegisterCmd(&stateDir))
	root.AddCommand(newLogoutCmd(&stateDir))
	root.AddCommand(newDocsCmd(&stateDir))
	root.AddCommand(newFeedsCmd(&stateDir))
	root.AddCommand(newSearchCmd(&stateDir))
	root.AddCommand(newReportCmd(&stateDir))
	return root
}

func loadApp(stateDir string) (*bootstrap.App, error) {
	cfg, err := config.New(stateDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the xunews terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newLoginCmd(stateDir *string) *cobra.Command {
	var username, password string
	login := &cobra.Command{
		Use:   "login --username <name> --password <password>",
		Short: "Sign in and persist the credential token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(username) == "" || password == "" {
				return fmt.Errorf("--username and --password are required")
			}
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			if _, err := app.AuthCLI.Login(context.Background(), username, password); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged in")
			return nil
		},
	}
	login.Flags().StringVar(&username, "username", "", "account username")
	login.Flags().StringVar(&password, "password", "", "account password")
	return login
}

func newRegisterCmd(stateDir *string) *cobra.Command {
	var username, password string
	register := &cobra.Command{
		Use:   "register --username <name> --password <password>",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(username) == "" || password == "" {
				return fmt.Errorf("--username and --password are required")
			}
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			out, err := app.AuthCLI.Register(context.Background(), username, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Msg)
			return nil
		},
	}
	register.Flags().StringVar(&username, "username", "", "account username")
	register.Flags().StringVar(&password, "password", "", "account password")
	return register
}

func newLogoutCmd(stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the persisted credential token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			if _, err := app.AuthCLI.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newDocsCmd(stateDir *string) *cobra.Command {
	docs := &cobra.Command{Use: "docs", Short: "Knowledge base documents"}

	var docType, startDate, endDate string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List documents in the knowledge base",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			items, err := app.KnowledgeCLI.List(context.Background(), docType, startDate, endDate)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no documents")
				return nil
			}
			for _, d := range items {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\n", d.ID, d.DocumentType, d.FilePath, d.Source, d.Tags)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&docType, "type", "", "filter by document type")
	listCmd.Flags().StringVar(&startDate, "start-date", "", "filter from date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&endDate, "end-date", "", "filter to date (YYYY-MM-DD)")
	docs.AddCommand(listCmd)

	var source, tags string
	uploadCmd := &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a file into the knowledge base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			out, err := app.KnowledgeCLI.Upload(context.Background(), args[0], source, tags)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Msg)
			return nil
		},
	}
	uploadCmd.Flags().StringVar(&source, "source", "", "document source")
	uploadCmd.Flags().StringVar(&tags, "tags", "", "comma separated tags")
	docs.AddCommand(uploadCmd)

	var updSource, updTags string
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a document's source and tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid document id %q", args[0])
			}
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			if err := app.KnowledgeCLI.Update(context.Background(), id, updSource, updTags); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated document %d\n", id)
			return nil
		},
	}
	updateCmd.Flags().StringVar(&updSource, "source", "", "document source")
	updateCmd.Flags().StringVar(&updTags, "tags", "", "comma separated tags")
	docs.AddCommand(updateCmd)

	docs.AddCommand(&cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete one or more documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int, len(args))
			for i, arg := range args {
				id, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid document id %q", arg)
				}
				ids[i] = id
			}
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			if len(ids) == 1 {
				if err := app.KnowledgeCLI.Delete(context.Background(), ids[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted document %d\n", ids[0])
				return nil
			}
			out, err := app.KnowledgeCLI.BatchDelete(context.Background(), ids)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Msg)
			return nil
		},
	})

	return docs
}

func newFeedsCmd(stateDir *string) *cobra.Command {
	feeds := &cobra.Command{Use: "feeds", Short: "RSS feed subscriptions"}

	feeds.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List subscribed feeds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			items, err := app.FeedsCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no feeds")
				return nil
			}
			for _, f := range items {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", f.ID, f.URL)
			}
			return nil
		},
	})

	feeds.AddCommand(&cobra.Command{
		Use:   "add <url>",
		Short: "Subscribe to a feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			out, err := app.FeedsCLI.Add(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added feed %d: %s\n", out.ID, out.URL)
			return nil
		},
	})

	feeds.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Unsubscribe from a feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid feed id %q", args[0])
			}
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			if err := app.FeedsCLI.Delete(context.Background(), id); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted feed %d\n", id)
			return nil
		},
	})

	return feeds
}

func newSearchCmd(stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Ask the knowledge base a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			out, err := app.SearchCLI.Ask(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Answer)
			if out.Source != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "source: %s\n", out.Source)
			}
			return nil
		},
	}
}

func newReportCmd(stateDir *string) *cobra.Command {
	report := &cobra.Command{Use: "report", Short: "Knowledge base reports"}

	report.AddCommand(&cobra.Command{
		Use:   "keywords",
		Short: "Show the top keywords across the corpus",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			out, err := app.ReportsCLI.Keywords(context.Background())
			if err != nil {
				return err
			}
			if len(out.Keywords) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no keywords")
				return nil
			}
			for i, kw := range out.Keywords {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s\n", i+1, kw)
			}
			return nil
		},
	})

	report.AddCommand(&cobra.Command{
		Use:   "clustering",
		Short: "Show the document cluster breakdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			out, err := app.ReportsCLI.Clustering(context.Background())
			if err != nil {
				return err
			}
			if out.Err != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Err)
				return nil
			}
			labels := make([]string, 0, len(out.Clusters))
			for label := range out.Clusters {
				labels = append(labels, label)
			}
			sort.Strings(labels)
			for _, label := range labels {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", label, strings.Join(out.Clusters[label], ", "))
			}
			return nil
		},
	})

	return report
}
