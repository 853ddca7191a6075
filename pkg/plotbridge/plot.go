package plotbridge

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/ukaji3/plotbridge-go/pkg/plotbridge/models"
	"github.com/ukaji3/plotbridge-go/pkg/plotbridge/output"
	"github.com/ukaji3/plotbridge-go/pkg/plotbridge/sanitize"
)

// Prepare sanitizes layout and every trace in data, in place, and assembles
// the figure. The first failing trace aborts preparation.
func Prepare(data []map[string]interface{}, layout models.Layout, logger zerolog.Logger) (*models.Figure, error) {
	if layout == nil {
		layout = models.Layout{}
	}
	sanitize.Layout(layout)

	s := sanitize.NewTraceSanitizer(logger)
	traces := make([]models.Trace, 0, len(data))
	for i, raw := range data {
		tag, _ := raw[models.TypeField].(string)
		tr, err := s.Sanitize(raw)
		if err != nil {
			return nil, NewTraceError(i, models.TraceType(tag), err)
		}
		logger.Debug().Int("index", i).Str("trace_type", string(tr.Type)).Int("fields", len(tr.Fields)).Msg("trace prepared")
		traces = append(traces, tr)
	}

	return &models.Figure{
		Traces: traces,
		Layout: layout,
	}, nil
}

// Render hands the figure to the output selected by opts.Mode.
func Render(fig *models.Figure, opts Options) error {
	logger := opts.Logger
	if opts.Mode == "" {
		opts.Mode = ModeShow
	}
	if opts.Mode.NeedsOutput() && opts.OutputPath == "" {
		return fmt.Errorf("%s mode requires an output path", opts.Mode)
	}

	switch opts.Mode {
	case ModePNG:
		if err := output.SavePNG(fig, opts.OutputPath); err != nil {
			return fmt.Errorf("render png: %w", err)
		}
	case ModeXLSX:
		if err := output.WriteXLSX(fig, opts.OutputPath); err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
	case ModeShow, ModeHTML, ModeJSON:
		pf, err := output.ToPlotly(fig)
		if err != nil {
			return fmt.Errorf("build figure: %w", err)
		}
		switch opts.Mode {
		case ModeShow:
			path, err := output.Show(pf, fig.Layout.Title(), opts.ShowDir)
			if err != nil {
				return fmt.Errorf("show figure: %w", err)
			}
			logger.Info().Str("path", path).Msg("figure opened")
			return nil
		case ModeHTML:
			if err := output.SaveHTML(pf, fig.Layout.Title(), opts.OutputPath); err != nil {
				return fmt.Errorf("write html: %w", err)
			}
		case ModeJSON:
			jsonData, err := output.ToJSON(pf, opts.Pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			if opts.OutputPath == "" {
				stdout := opts.Stdout
				if stdout == nil {
					stdout = os.Stdout
				}
				_, err := fmt.Fprintln(stdout, string(jsonData))
				return err
			}
			if err := os.WriteFile(opts.OutputPath, jsonData, 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidMode, opts.Mode)
	}

	logger.Info().Str("mode", string(opts.Mode)).Str("path", opts.OutputPath).Int("traces", len(fig.Traces)).Msg("figure written")
	return nil
}

// Run checks and loads both input files, prepares the figure and renders it.
func Run(dataPath, layoutPath string, opts Options) error {
	if err := CheckInputs(dataPath, layoutPath); err != nil {
		return err
	}

	data, err := LoadData(dataPath)
	if err != nil {
		return err
	}
	layout, err := LoadLayout(layoutPath)
	if err != nil {
		return err
	}
	opts.Logger.Debug().Int("traces", len(data)).Int("layout_keys", len(layout)).Msg("inputs loaded")

	fig, err := Prepare(data, layout, opts.Logger)
	if err != nil {
		return err
	}

	return Render(fig, opts)
}
