package cli

import (
	"io"

	"github.com/aleister1102/layoutdiff/internal/common/errorwrapper"
	"github.com/aleister1102/layoutdiff/internal/common/file"
	"github.com/aleister1102/layoutdiff/internal/config"
	"github.com/aleister1102/layoutdiff/internal/models"
	"github.com/aleister1102/layoutdiff/internal/normalizer"
	"github.com/aleister1102/layoutdiff/internal/render"
	"github.com/aleister1102/layoutdiff/internal/session"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
	sideBoth   = "both"
	stdinPath  = "-"
)

// compareOptions holds the flags of the compare command.
type compareOptions struct {
	find     string
	regex    bool
	side     string
	selected int
	format   string
	context  int
	width    int
	color    string
	lineNums bool
	exitCode bool
}

func newCompareCommand(global *globalOptions) *cobra.Command {
	opts := &compareOptions{}

	cmd := &cobra.Command{
		Use:   "compare LEFT RIGHT",
		Short: "Compare two documents side by side",
		Long: `Compare normalizes both inputs, aligns them and prints the result.
Use "-" for one of the inputs to read it from stdin.

With --find, the query is searched on the selected side(s) and every match
is highlighted; --select picks which match is current.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, global, opts, args[0], args[1])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.find, "find", "f", "", "search query")
	flags.BoolVar(&opts.regex, "regex", false, "treat the query as a regular expression")
	flags.StringVar(&opts.side, "side", sideBoth, "side to search: left, right, both")
	flags.IntVar(&opts.selected, "select", 0, "1-based match to make current")
	flags.StringVar(&opts.format, "format", formatText, "output format: text, json")
	flags.IntVar(&opts.context, "context", config.DefaultRenderContextLines, "unchanged rows shown around changes, -1 for all")
	flags.IntVar(&opts.width, "width", config.DefaultRenderColumnWidth, "column width in cells")
	flags.StringVar(&opts.color, "color", config.DefaultRenderColorMode, "colorize output: auto, always, never")
	flags.BoolVar(&opts.lineNums, "line-numbers", config.DefaultRenderShowLineNumbers, "show line numbers")
	flags.BoolVar(&opts.exitCode, "exit-code", false, "exit with status 1 when the documents differ")

	return cmd
}

func runCompare(cmd *cobra.Command, global *globalOptions, opts *compareOptions, leftPath, rightPath string) error {
	if opts.format != formatText && opts.format != formatJSON {
		return errorwrapper.NewValidationError("format", opts.format, "format must be 'text' or 'json'")
	}
	sides, err := parseSides(opts.side)
	if err != nil {
		return err
	}

	rt, err := loadRuntime(global, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer rt.Close()

	applyRenderFlags(cmd, opts, &rt.cfg.RenderConfig)
	if err := config.ValidateConfig(rt.cfg); err != nil {
		return err
	}

	reader := file.NewFileReader(rt.logger)
	readOpts := file.ReadOptionsFromMB(rt.cfg.InputConfig.MaxSizeMB)
	left, right, err := readInputs(reader, readOpts, cmd.InOrStdin(), leftPath, rightPath)
	if err != nil {
		return err
	}

	s, err := session.NewSession(rt.cfg, rt.logger)
	if err != nil {
		return err
	}
	s.SetDocuments(normalizer.Raw(left), normalizer.Raw(right))

	if opts.find != "" {
		if err := runSearch(s, sides, opts); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if opts.format == formatJSON {
		err = render.WriteJSONReport(out, s)
	} else {
		err = render.NewTerminalRenderer(rt.cfg.RenderConfig, out, rt.logger).
			WithTitles(leftPath, rightPath).
			Render(out, s)
	}
	if err != nil {
		return errorwrapper.WrapError(err, "failed to write output")
	}

	if opts.exitCode && !s.Alignment().Stats.IsIdentical {
		return ErrDifferencesFound
	}
	return nil
}

func runSearch(s *session.Session, sides []models.Side, opts *compareOptions) error {
	for _, side := range sides {
		var err error
		if opts.regex {
			_, err = s.SearchSideRegex(side, opts.find)
		} else {
			_, err = s.SearchSide(side, opts.find)
		}
		if err != nil {
			return err
		}
		if opts.selected > 0 {
			s.JumpTo(side, opts.selected)
		}
	}
	return nil
}

// applyRenderFlags overrides the configured render settings with flags set
// on the command line.
func applyRenderFlags(cmd *cobra.Command, opts *compareOptions, cfg *config.RenderConfig) {
	flags := cmd.Flags()
	if flags.Changed("context") {
		cfg.ContextLines = opts.context
	}
	if flags.Changed("width") {
		cfg.ColumnWidth = opts.width
	}
	if flags.Changed("color") {
		cfg.ColorMode = opts.color
	}
	if flags.Changed("line-numbers") {
		cfg.ShowLineNumbers = opts.lineNums
	}
}

func parseSides(value string) ([]models.Side, error) {
	if value == sideBoth || value == "" {
		return models.Sides, nil
	}
	side, err := models.ParseSide(value)
	if err != nil {
		return nil, err
	}
	return []models.Side{side}, nil
}

// readInputs reads both documents. At most one of them may be stdin.
func readInputs(reader *file.FileReader, opts file.ReadOptions, stdin io.Reader, leftPath, rightPath string) (string, string, error) {
	if leftPath == stdinPath && rightPath == stdinPath {
		return "", "", errorwrapper.NewSentinelValidationError(errorwrapper.ErrInvalidInput, "inputs", stdinPath, "only one input can be read from stdin")
	}

	left, err := readInput(reader, opts, stdin, leftPath)
	if err != nil {
		return "", "", err
	}
	right, err := readInput(reader, opts, stdin, rightPath)
	if err != nil {
		return "", "", err
	}
	return left, right, nil
}

func readInput(reader *file.FileReader, opts file.ReadOptions, stdin io.Reader, path string) (string, error) {
	if path == stdinPath {
		data, err := reader.ReadStream(stdin, opts)
		if err != nil {
			return "", errorwrapper.WrapError(err, "failed to read stdin")
		}
		return string(data), nil
	}

	data, err := reader.ReadFile(path, opts)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
