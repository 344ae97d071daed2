package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/binodji2005/nistha-free-ai-image-generator/internal/domain"
)

// CommandKind names a user action delivered by the UI layer.
type CommandKind string

const (
	CmdGenerate     CommandKind = "generate"
	CmdRetry        CommandKind = "retry"
	CmdRegenerate   CommandKind = "regenerate"
	CmdSelectAspect CommandKind = "select_aspect"
	CmdSelectStyle  CommandKind = "select_style"
	CmdUseExample   CommandKind = "use_example"
)

// Command is one user action. Prompt and Selection are used by the generate
// family, Value by the selectors and Example by CmdUseExample.
type Command struct {
	Kind      CommandKind
	Prompt    string
	Selection Selection
	Value     string
	Example   int
}

// Dispatch applies cmd and returns the resulting snapshot. Retry and
// regenerate reuse the current draft when cmd.Prompt is blank.
func (c *Controller) Dispatch(ctx context.Context, cmd Command) (Snapshot, error) {
	switch cmd.Kind {
	case CmdGenerate:
		return c.SubmitWith(ctx, cmd.Prompt, cmd.Selection)
	case CmdRetry, CmdRegenerate:
		prompt := cmd.Prompt
		if strings.TrimSpace(prompt) == "" {
			prompt = c.Snapshot().Draft
		}
		return c.SubmitWith(ctx, prompt, cmd.Selection)
	case CmdSelectAspect:
		if err := c.SelectAspectRatio(cmd.Value); err != nil {
			return c.Snapshot(), err
		}
	case CmdSelectStyle:
		if err := c.SelectStyle(cmd.Value); err != nil {
			return c.Snapshot(), err
		}
	case CmdUseExample:
		example, ok := domain.ExamplePrompt(cmd.Example)
		if !ok {
			return c.Snapshot(), &domain.ValidationError{Err: fmt.Errorf("unknown example %d", cmd.Example)}
		}
		c.SetDraft(example)
	default:
		return c.Snapshot(), fmt.Errorf("unknown command %q", cmd.Kind)
	}
	return c.Snapshot(), nil
}
