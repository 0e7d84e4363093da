package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gabrielsuarezz/Voxtant/internal/interview"
	"github.com/gabrielsuarezz/Voxtant/internal/logger"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var aiTipsPrompt = promptui.Select{
	Label: "Generate coaching tips with the Gemini API? (No uses the built-in rules)",
	Items: []string{PromptYes, PromptNo},
}

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade a single answer payload and print the result",
	Run: func(cmd *cobra.Command, _ []string) {
		grade(cmd)
	},
}

func init() {
	rootCmd.AddCommand(gradeCmd)

	gradeCmd.Flags().StringP("file", "f", "", "payload file with transcript, timings and jobGraph (default is stdin)")
	gradeCmd.Flags().BoolP("auto-aprove", "y", false, "do not ask for confirmation before calling the AI provider")
}

func grade(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	payload, err := readPayload(cmd.Flag("file").Value.String())
	if err != nil {
		logger.Fatal("reading payload", zap.Error(err))
	}

	eng := buildEngine(ctx, config, logger)

	// Tip generation is the only paid call in this command, so ask before
	// spending unless -y was given.
	if eng.tipper != nil && cmd.Flag("auto-aprove").Value.String() == "false" {
		_, action, err := aiTipsPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if action == PromptNo {
			eng.grader = interview.NewGrader(eng.scorer, nil, logger)
		}
	}

	result := eng.grader.Grade(ctx, payload)

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal("encoding result", zap.Error(err))
	}

	fmt.Println(string(pretty))
}

func readPayload(path string) (*interview.Payload, error) {
	var (
		data []byte
		err  error
	)

	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading payload: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing payload: %w", err)
	}

	return interview.DecodePayload(raw)
}
