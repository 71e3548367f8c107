package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/bgraf/figurekit/cmd/tools"
	"github.com/bgraf/figurekit/document"
	"github.com/bgraf/figurekit/figure"
	"github.com/bgraf/figurekit/option"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit FILE [SRC]",
	Short: "Interactively edit a figure of a post",
	Long: `Asks for every setting of the figure showing SRC, or of a figure picked
from a list when SRC is omitted, and writes the result back. With --raw the
post is opened in the configured editor at the figure instead.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().Bool("raw", false, "Open the post in the editor at the figure")
}

func runEdit(cmd *cobra.Command, args []string) error {
	path := args[0]

	doc, err := document.LoadDocument(path)
	if err != nil {
		return err
	}

	var src string
	if len(args) == 2 {
		src = args[1]
	} else {
		src, err = promptFigure(doc)
		if err != nil {
			return err
		}
	}

	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		source := string(doc.Source())
		span, err := figure.Locate(source, src)
		if err != nil {
			return err
		}
		return tools.RunEditor(path, tools.LineOf(source, span.Start))
	}

	var promptErr error
	err = doc.UpdateFigure(src, func(cfg *figure.ImageConfig) {
		promptErr = promptImageConfig(cfg)
	})
	if promptErr != nil {
		return promptErr
	}
	if err != nil {
		return err
	}

	if err := document.Save(doc); err != nil {
		return err
	}

	logger.Info("figure edited", zap.String("path", path), zap.String("src", src))
	return nil
}

func promptFigure(doc *document.Document) (string, error) {
	cfgs, err := doc.Figures()
	if err != nil {
		return "", err
	}
	if len(cfgs) == 0 {
		return "", fmt.Errorf("%s has no figures", doc.Path)
	}

	options := make([]string, len(cfgs))
	for i, cfg := range cfgs {
		options[i] = cfg.Src
	}

	var src string
	prompt := &survey.Select{
		Message: "Figure",
		Options: options,
		Description: func(value string, index int) string {
			return cfgs[index].Alt
		},
	}
	err = survey.AskOne(prompt, &src)
	exitOnInterrupt(err)

	return src, err
}

// promptImageConfig asks for every field of cfg, offering the current
// values as defaults.
func promptImageConfig(cfg *figure.ImageConfig) error {
	width := ""
	if cfg.Width.IsSome() {
		width = strconv.Itoa(cfg.Width.Get())
	}

	answers := struct {
		Alt          string
		Caption      string
		Width        string
		WrapMode     string
		BorderRadius string
		Shadow       string
		LinkURL      string
	}{}

	questions := []*survey.Question{
		{
			Name:     "alt",
			Prompt:   &survey.Input{Message: "Alt text", Default: cfg.Alt},
			Validate: survey.Required,
		},
		{
			Name:   "caption",
			Prompt: &survey.Input{Message: "Caption", Default: cfg.Caption},
		},
		{
			Name:     "width",
			Prompt:   &survey.Input{Message: "Width in pixels (empty for none)", Default: width},
			Validate: validateWidth,
		},
		{
			Name: "wrapmode",
			Prompt: &survey.Select{
				Message: "Wrap",
				Options: stringValues(figure.WrapModes),
				Default: string(cfg.WrapMode),
			},
		},
		{
			Name: "borderradius",
			Prompt: &survey.Select{
				Message: "Border radius",
				Options: stringValues(figure.BorderRadii),
				Default: string(cfg.BorderRadius),
			},
		},
		{
			Name: "shadow",
			Prompt: &survey.Select{
				Message: "Shadow",
				Options: stringValues(figure.Shadows),
				Default: string(cfg.Shadow),
			},
		},
		{
			Name:   "linkurl",
			Prompt: &survey.Input{Message: "Link (empty for none)", Default: cfg.LinkURL},
		},
	}

	err := survey.Ask(questions, &answers)
	exitOnInterrupt(err)
	if err != nil {
		return err
	}

	cfg.Alt = strings.TrimSpace(answers.Alt)
	cfg.Caption = strings.TrimSpace(answers.Caption)
	cfg.WrapMode = figure.WrapMode(answers.WrapMode)
	cfg.BorderRadius = figure.BorderRadius(answers.BorderRadius)
	cfg.Shadow = figure.Shadow(answers.Shadow)
	cfg.LinkURL = strings.TrimSpace(answers.LinkURL)

	cfg.Width = option.None[int]()
	if w := strings.TrimSpace(answers.Width); w != "" {
		n, _ := strconv.Atoi(w)
		cfg.Width = option.Some(n)
	}

	if cfg.HasLink() {
		newTab := cfg.OpenInNewTab
		err := survey.AskOne(&survey.Confirm{Message: "Open link in new tab", Default: newTab}, &newTab)
		exitOnInterrupt(err)
		if err != nil {
			return err
		}
		cfg.OpenInNewTab = newTab
	}

	return nil
}

func validateWidth(ans interface{}) error {
	s := strings.TrimSpace(ans.(string))
	if s == "" {
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("width must be a positive number")
	}
	return nil
}

func stringValues[T ~string](values []T) []string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = string(v)
	}
	return s
}

func exitOnInterrupt(err error) {
	if err == terminal.InterruptErr {
		os.Exit(1)
	}
}
