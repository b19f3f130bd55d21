package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/rshade/pagectl/internal/pagination"
)

// ErrUnknownAction is returned when a scripted action cannot be parsed.
var ErrUnknownAction = errors.New("unknown action")

// Scripted action kinds.
const (
	navForward  = "forward"
	navBackward = "backward"
	navSize     = "size"
	navPage     = "page"
)

// navAction is one parsed step of a navigation script.
type navAction struct {
	Kind  string
	Input string
}

func (a navAction) String() string {
	if a.Input == "" {
		return a.Kind
	}
	return a.Kind + "=" + a.Input
}

// NavStep records the outcome of one scripted action.
type NavStep struct {
	Step     int                `json:"step"             yaml:"step"`
	Action   string             `json:"action"           yaml:"action"`
	Accepted bool               `json:"accepted"         yaml:"accepted"`
	Change   *pagination.Change `json:"change,omitempty" yaml:"change,omitempty"`
}

// NavResult is the full outcome of a navigation script.
type NavResult struct {
	Steps []NavStep           `json:"steps" yaml:"steps"`
	Final pagination.Snapshot `json:"final" yaml:"final"`
}

// ChangeCount returns how many steps produced a change.
func (r NavResult) ChangeCount() int {
	n := 0
	for _, s := range r.Steps {
		if s.Change != nil {
			n++
		}
	}
	return n
}

// parseActions parses a comma-separated script such as "forward,size=20,page=2,back".
// Nothing runs unless every action parses.
func parseActions(script string) ([]navAction, error) {
	var actions []navAction
	for _, raw := range strings.Split(script, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		name, value, hasValue := strings.Cut(raw, "=")
		switch strings.ToLower(name) {
		case "forward", "next", "f":
			if hasValue {
				return nil, fmt.Errorf("%w: %q takes no value", ErrUnknownAction, raw)
			}
			actions = append(actions, navAction{Kind: navForward})
		case "backward", "back", "prev", "b":
			if hasValue {
				return nil, fmt.Errorf("%w: %q takes no value", ErrUnknownAction, raw)
			}
			actions = append(actions, navAction{Kind: navBackward})
		case "size":
			if !hasValue {
				return nil, fmt.Errorf("%w: %q needs a value", ErrUnknownAction, raw)
			}
			actions = append(actions, navAction{Kind: navSize, Input: value})
		case "page":
			if !hasValue {
				return nil, fmt.Errorf("%w: %q needs a value", ErrUnknownAction, raw)
			}
			actions = append(actions, navAction{Kind: navPage, Input: value})
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, raw)
		}
	}
	return actions, nil
}

// runActions drives a controller built from cfg through actions and records each
// outcome along with the change the controller delivered for it.
// Steps are only attempted when the control would offer them, matching what a
// front end does by disabling the affordance.
func runActions(cfg pagination.Config, actions []navAction, opts ...pagination.Option) NavResult {
	var delivered []pagination.Change
	opts = append(opts, pagination.WithOnChange(func(c pagination.Change) {
		delivered = append(delivered, c)
	}))
	ctrl := pagination.New(cfg, opts...)

	steps := make([]NavStep, 0, len(actions))
	for i, a := range actions {
		before := len(delivered)

		var accepted bool
		switch a.Kind {
		case navForward:
			accepted = ctrl.CanForward() && ctrl.Forward()
		case navBackward:
			accepted = ctrl.CanBackward() && ctrl.Backward()
		case navSize:
			accepted = ctrl.ChangeSizeInput(a.Input)
		case navPage:
			accepted = ctrl.PageInputEnabled() && ctrl.JumpToInput(a.Input)
		}

		step := NavStep{Step: i + 1, Action: a.String(), Accepted: accepted}
		if len(delivered) > before {
			c := delivered[len(delivered)-1]
			step.Change = &c
		}
		steps = append(steps, step)
	}

	return NavResult{Steps: steps, Final: ctrl.Snapshot()}
}

type navParams struct {
	actions string
	output  string
}

// newNavCmd creates the scripted navigation command.
func newNavCmd(opts *rootOptions) *cobra.Command {
	var params navParams
	var flags *paginationFlags

	cmd := &cobra.Command{
		Use:   "nav [actions...]",
		Short: "Run a scripted sequence of navigation actions",
		Long: `Run navigation actions through the pagination control and print every change.

Actions: forward (next, f), backward (back, prev, b), size=N, page=N.
Actions may be given with --actions as a comma-separated list or as arguments.
Each action is subject to the same enablement rules as the interactive view.`,
		Example: `  # Two steps forward, a size change, then a jump
  pagectl nav --total 95 --actions forward,forward,size=20,page=2,back

  # Same script, JSON output
  pagectl nav --total 95 forward forward size=20 page=2 back --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			script := params.actions
			if len(args) > 0 {
				script = strings.Join(append([]string{script}, args...), ",")
			}
			actions, err := parseActions(script)
			if err != nil {
				return err
			}
			if len(actions) == 0 {
				return errors.New("no actions given (use --actions or pass them as arguments)")
			}

			format, err := ParseOutputFormat(params.output)
			if err != nil {
				return err
			}

			cfg, err := flags.resolve(opts.cfg)
			if err != nil {
				return err
			}

			id := ulid.Make().String()
			result := runActions(cfg.Pagination.ToPagination(), actions, controllerOptions(cfg, id, opts)...)

			opts.logger.Debug().Ctx(cmd.Context()).
				Str("pager_id", id).
				Int("steps", len(result.Steps)).
				Int("changes", result.ChangeCount()).
				Msg("navigation script finished")

			return renderNavResult(cmd.OutOrStdout(), format, result)
		},
	}

	cmd.Flags().StringVar(&params.actions, "actions", "", "comma-separated actions to run")
	cmd.Flags().StringVarP(&params.output, "output", "o", string(OutputTable), "output format: table, json, yaml")
	flags = addPaginationFlags(cmd)

	return cmd
}
