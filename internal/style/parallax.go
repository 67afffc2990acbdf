package style

import (
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ParallaxSpec holds the expressions mapping scroll progress to visual
// parameters. Each expression sees `progress` in [0,1]; empty ones are
// skipped.
type ParallaxSpec struct {
	TranslateY string `yaml:"translate_y" json:"translateY,omitempty"`
	Scale      string `yaml:"scale" json:"scale,omitempty"`
	Opacity    string `yaml:"opacity" json:"opacity,omitempty"`
}

// IsZero reports whether no mapping is configured.
func (s ParallaxSpec) IsZero() bool {
	return strings.TrimSpace(s.TranslateY) == "" &&
		strings.TrimSpace(s.Scale) == "" &&
		strings.TrimSpace(s.Opacity) == ""
}

// Values are the evaluated parameters for one progress value.
type Values struct {
	TranslateY float64
	Scale      float64
	Opacity    float64

	HasTranslateY bool
	HasScale      bool
	HasOpacity    bool
}

// Parallax is a compiled ParallaxSpec.
type Parallax struct {
	translateY *vm.Program
	scale      *vm.Program
	opacity    *vm.Program
}

// CompileParallax compiles every non-empty expression in spec.
func CompileParallax(spec ParallaxSpec) (*Parallax, error) {
	p := &Parallax{}
	var err error
	if p.translateY, err = compile("translate_y", spec.TranslateY); err != nil {
		return nil, err
	}
	if p.scale, err = compile("scale", spec.Scale); err != nil {
		return nil, err
	}
	if p.opacity, err = compile("opacity", spec.Opacity); err != nil {
		return nil, err
	}
	return p, nil
}

func compile(name, src string) (*vm.Program, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, nil
	}
	program, err := expr.Compile(src,
		expr.Env(map[string]any{"progress": 0.0}),
		expr.AsFloat64(),
	)
	if err != nil {
		return nil, fmt.Errorf("compile parallax %s %q: %w", name, src, err)
	}
	return program, nil
}

// Values evaluates the mappings at progress.
func (p *Parallax) Values(progress float64) (Values, error) {
	var v Values
	if p == nil {
		return v, nil
	}
	env := map[string]any{"progress": progress}
	var err error
	if p.translateY != nil {
		if v.TranslateY, err = run(p.translateY, env); err != nil {
			return Values{}, fmt.Errorf("translate_y: %w", err)
		}
		v.HasTranslateY = true
	}
	if p.scale != nil {
		if v.Scale, err = run(p.scale, env); err != nil {
			return Values{}, fmt.Errorf("scale: %w", err)
		}
		v.HasScale = true
	}
	if p.opacity != nil {
		if v.Opacity, err = run(p.opacity, env); err != nil {
			return Values{}, fmt.Errorf("opacity: %w", err)
		}
		v.Opacity = math.Max(0, math.Min(1, v.Opacity))
		v.HasOpacity = true
	}
	return v, nil
}

func run(program *vm.Program, env map[string]any) (float64, error) {
	out, err := expr.Run(program, env)
	if err != nil {
		return 0, err
	}
	f, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("expected float64, got %T", out)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-finite result %v", f)
	}
	return f, nil
}

// Apply evaluates the mappings at progress and renders them.
func (p *Parallax) Apply(progress float64) (Style, error) {
	v, err := p.Values(progress)
	if err != nil {
		return nil, err
	}
	return v.Style(), nil
}

// Endpoints evaluates the mappings at progress 0 and 1. The mappings are
// affine, so a browser can interpolate between the two.
func (p *Parallax) Endpoints() (from, to Values, err error) {
	if from, err = p.Values(0); err != nil {
		return Values{}, Values{}, err
	}
	if to, err = p.Values(1); err != nil {
		return Values{}, Values{}, err
	}
	return from, to, nil
}

// Style renders v as transform and opacity declarations.
func (v Values) Style() Style {
	var s Style
	var transforms []string
	if v.HasTranslateY {
		transforms = append(transforms, "translate3d(0, "+Px(v.TranslateY)+", 0)")
	}
	if v.HasScale {
		transforms = append(transforms, "scale("+Number(v.Scale)+")")
	}
	if len(transforms) > 0 {
		s = s.Set("transform", strings.Join(transforms, " "))
	}
	if v.HasOpacity {
		s = s.Set("opacity", Number(v.Opacity))
	}
	return s
}
