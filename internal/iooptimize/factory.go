package iooptimize

import (
	"github.com/optimg/optimg/pkg/command"
	"github.com/optimg/optimg/pkg/config"
	"github.com/optimg/optimg/pkg/optimizer"
)

// registry is the name→optimizer mapping built once from configuration
// and read-only afterwards. Every base optimizer is wrapped by the
// output-validation decorator, then, when ignore_errors is set, by the
// error-suppression decorator. Chains are built over validation-wrapped
// members so member failures stay visible to the chain; the suppression
// wrapper goes around the chain as a whole.
type registry struct {
	byName   map[string]optimizer.Optimizer
	toolCmds map[string]string
	finder   command.Finder
}

// toolDef pairs a built-in tool with its argument style.
type toolDef struct {
	name       string
	args       []string
	style      command.ArgStyle
	outputFlag string
}

// NewRegistry wires the full optimizer graph from configuration: one
// single-tool optimizer per configured tool, the png/jpeg chains, the
// gif/svg entries, the "smart" type-dispatch entry, and any custom
// tools. The returned registry is immutable; concurrent Get and
// Optimize calls on different files are safe.
func NewRegistry(
	cfg *config.Config,
	runner command.Runner,
	finder command.Finder,
	guesser optimizer.TypeGuesser,
) optimizer.Registry {
	r := &registry{
		byName:   make(map[string]optimizer.Optimizer),
		toolCmds: make(map[string]string),
		finder:   finder,
	}

	opt := cfg.Optimize
	pattern := opt.OutputPattern

	defs := []toolDef{
		{"pngquant", cfg.Tools.PngquantArgs, command.StyleExtFlag, ""},
		{"optipng", cfg.Tools.OptipngArgs, command.StyleInPlace, ""},
		{"pngcrush", cfg.Tools.PngcrushArgs, command.StyleInPlace, ""},
		{"pngout", cfg.Tools.PngoutArgs, command.StyleInPlace, ""},
		{"advpng", cfg.Tools.AdvpngArgs, command.StyleInPlace, ""},
		{"gifsicle", cfg.Tools.GifsicleArgs, command.StyleInPlace, ""},
		{"jpegtran", cfg.Tools.JpegtranArgs, command.StyleOutputFlag, "-outfile"},
		{"jpegoptim", cfg.Tools.JpegoptimArgs, command.StyleInPlace, ""},
		{"svgo", cfg.Tools.SvgoArgs, command.StyleOutputFlag, "-o"},
	}

	// validation-wrapped single tools; chains compose these directly
	validated := make(map[string]optimizer.Optimizer, len(defs))
	for _, def := range defs {
		spec := r.newSpec(def.name, def.name, def.args, cfg)
		spec.Style = def.style
		spec.OutputFlag = def.outputFlag
		validated[def.name] = NewValidated(NewSingleTool(spec, runner), pattern)
	}

	wrap := func(o optimizer.Optimizer) optimizer.Optimizer {
		if opt.IgnoreErrors {
			return NewSuppressed(o)
		}
		return o
	}

	for name, v := range validated {
		r.byName[name] = wrap(v)
	}

	for _, tool := range cfg.Tools.Custom {
		spec := r.newSpec(tool.Name, tool.Command, tool.Args, cfg)
		r.byName[tool.Name] = wrap(
			NewValidated(NewSingleTool(spec, runner), pattern))
	}

	pngChain := NewChain([]optimizer.Optimizer{
		validated["pngquant"],
		validated["optipng"],
		validated["pngcrush"],
		validated["advpng"],
	}, opt.OnlyFirstPNG)
	r.byName["png"] = wrap(pngChain)

	jpegChain := NewChain([]optimizer.Optimizer{
		validated["jpegtran"],
		validated["jpegoptim"],
	}, opt.OnlyFirstJPEG)
	r.byName["jpeg"] = wrap(jpegChain)

	r.byName["gif"] = r.byName["gifsicle"]
	r.byName["svg"] = r.byName["svgo"]

	// Guesser failures must propagate to the caller, so the dispatch
	// entry itself stays unwrapped; its targets already carry the
	// configured wrapping.
	r.byName[optimizer.Smart] = NewTypeDispatch(guesser,
		map[optimizer.Type]optimizer.Optimizer{
			optimizer.PNG:  r.byName["png"],
			optimizer.JPEG: r.byName["jpeg"],
			optimizer.GIF:  r.byName["gif"],
			optimizer.SVG:  r.byName["svg"],
		})

	return r
}

// newSpec builds the immutable invocation spec for one tool, resolving
// its executable once at registry build time.
func (r *registry) newSpec(
	name, cmd string,
	args []string,
	cfg *config.Config,
) command.Spec {
	r.toolCmds[name] = cmd

	// A missing executable still gets a spec with the bare command;
	// running it fails through the runner, and `optimg check` is the
	// diagnostic for presence.
	resolved, ok := r.finder.Find(cmd)
	if !ok {
		resolved = cmd
	}

	return command.Spec{
		Name:    name,
		Command: resolved,
		Args:    args,
		Timeout: cfg.Optimize.Timeout(),
	}
}

// Get returns the optimizer registered under name.
func (r *registry) Get(name string) (optimizer.Optimizer, error) {
	opt, ok := r.byName[name]
	if !ok {
		return nil, NewNotFoundError(name)
	}
	return opt, nil
}

// CheckOptimizers reports, per configured tool, whether its executable
// resolves on the host. The report is independent of the decorator
// wrapping and of any optimization outcome.
func (r *registry) CheckOptimizers() map[string]bool {
	res := make(map[string]bool, len(r.toolCmds))
	for name, cmd := range r.toolCmds {
		_, ok := r.finder.Find(cmd)
		res[name] = ok
	}
	return res
}
