// Package cli wires config, logging and the pagination service into the pager command tree.
package cli

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maxviazov/pager/internal/config"
	"github.com/maxviazov/pager/internal/logger"
	"github.com/maxviazov/pager/internal/model"
	"github.com/maxviazov/pager/internal/service"
	"github.com/maxviazov/pager/pkg/response"
)

// ExitError carries the process exit code chosen by response.MapError.
// The payload has already been written when it is returned.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

type options struct {
	configPath string
	output     string
	request    model.PageRequest
}

// app is built once per invocation in PersistentPreRunE.
type app struct {
	svc service.PaginationService
	log zerolog.Logger
}

// NewRootCmd creates the root command with view, next, prev and goto subcommands.
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}
	a := &app{}

	cmd := &cobra.Command{
		Use:           "pager",
		Short:         "Page arithmetic for paginated result sets",
		Long:          "pager computes page counts, navigation windows, record offsets and page transitions.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.output != response.FormatJSON && opts.output != response.FormatYAML {
				return fmt.Errorf("%w: %q", response.ErrUnknownFormat, opts.output)
			}
			return a.init(opts)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	f.StringVarP(&opts.output, "output", "o", response.FormatJSON, "output format: json|yaml")
	f.IntVar(&opts.request.TotalItems, "total", 0, "total number of items in the result set")
	f.IntVar(&opts.request.CurrentPage, "page", 1, "current page, 1-based")
	f.IntVar(&opts.request.ResultsPerPage, "per-page", 0, "results per page (0 = config default)")
	f.IntVar(&opts.request.MaxPagesToDisplay, "window", 0, "max page numbers to display (0 = config default)")

	cmd.AddCommand(
		newViewCmd(a, opts),
		newMoveCmd(a, opts, model.DirectionNext, "next", "Advance to the next page"),
		newMoveCmd(a, opts, model.DirectionPrevious, "prev", "Go back to the previous page"),
		newGoToCmd(a, opts),
	)
	return cmd
}

func (a *app) init(opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	l, err := logger.New(&cfg.Logger)
	if err != nil {
		return err
	}
	a.log = l
	a.svc = service.NewPaginationService(service.Defaults{
		ResultsPerPage:    cfg.Pagination.ResultsPerPage,
		MaxPagesToDisplay: cfg.Pagination.MaxPagesToDisplay,
	}, l)
	a.log.Debug().Str("config", opts.configPath).Msg("pager initialized")
	return nil
}

// render writes data or the mapped error to the command's stdout.
func render(cmd *cobra.Command, format string, data any, err error) error {
	if err != nil {
		code := response.WriteError(cmd.OutOrStdout(), format, err)
		return &ExitError{Code: code, Err: err}
	}
	return response.WriteData(cmd.OutOrStdout(), format, data)
}

func newViewCmd(a *app, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Describe the current page: page count, skip and navigation window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			meta, err := a.svc.Describe(opts.request)
			return render(cmd, opts.output, meta, err)
		},
	}
}

func newMoveCmd(a *app, opts *options, dir model.Direction, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tr, err := a.svc.Navigate(model.NavigateRequest{PageRequest: opts.request, Direction: dir})
			return render(cmd, opts.output, tr, err)
		},
	}
}

func newGoToCmd(a *app, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "goto <page>",
		Short: "Jump to a specific page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := strconv.Atoi(args[0])
			if err != nil {
				a.log.Debug().Str("target_page_raw", args[0]).Err(err).Msg("target page is not an integer")
				return render(cmd, opts.output, nil, service.InvalidField("target_page", "must be an integer"))
			}
			tr, err := a.svc.Navigate(model.NavigateRequest{
				PageRequest: opts.request,
				Direction:   model.DirectionGoTo,
				TargetPage:  target,
			})
			return render(cmd, opts.output, tr, err)
		},
	}
}
