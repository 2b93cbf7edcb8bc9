package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/tubeblog/internal/adapter/repository"
	"github.com/johnquangdev/tubeblog/internal/infrastructure/external/assemblyai"
	"github.com/johnquangdev/tubeblog/internal/infrastructure/external/llm"
	"github.com/johnquangdev/tubeblog/internal/infrastructure/external/youtube"
	"github.com/johnquangdev/tubeblog/internal/usecase/blog"
)

var generateCmd = &cobra.Command{
	Use:   "generate [URL]",
	Short: "Generate and store a blog article for a YouTube video",
	Example: `  tubeblogctl generate "https://www.youtube.com/watch?v=dQw4w9WgXcQ" --user alice
  tubeblogctl generate https://youtu.be/dQw4w9WgXcQ --user alice -o article.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		username, _ := cmd.Flags().GetString("user")
		outputFile, _ := cmd.Flags().GetString("output")

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		user, err := repository.NewUserRepository(a.db).FindByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("user %q: %w", username, err)
		}

		var infoSource youtube.InfoSource = youtube.NewYTDLPInfoSource(a.cfg.YouTube.YTDLPPath)
		if a.cfg.YouTube.APIKey != "" {
			if infoSource, err = youtube.NewDataAPISource(ctx, a.cfg.YouTube.APIKey); err != nil {
				return err
			}
		}

		var store blog.ArticleStore
		minioClient, err := a.storage(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		if minioClient != nil {
			store = minioClient
		}

		service := blog.NewService(
			youtube.NewCaptionFetcher(&a.cfg.YouTube, a.logger),
			youtube.NewMetadataFetcher(infoSource, a.logger),
			youtube.NewAudioRetriever(a.cfg.YouTube.YTDLPPath, "", a.logger),
			assemblyai.NewTranscriber(a.cfg, a.logger),
			llm.NewGenerator(a.cfg, a.logger),
			repository.NewBlogRepository(a.db),
			store,
			a.cfg,
			a.logger,
		)

		result, err := service.Generate(ctx, user.ID, args[0])
		if err != nil {
			return err
		}
		a.logger.Info("✅ Article stored",
			zap.String("blog_id", result.Article.ID.String()),
			zap.String("method", string(result.Article.Method)),
		)

		markdown := blog.RenderMarkdown(result.Article)
		if outputFile != "" {
			return os.WriteFile(outputFile, []byte(markdown), 0644)
		}

		fmt.Fprintln(cmd.OutOrStdout(), markdown)
		return nil
	},
}

func init() {
	generateCmd.Flags().String("user", "", "Username that will own the article")
	generateCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	_ = generateCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(generateCmd)
}
