package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/svgattr"
	"github.com/gogpu/svgattr/internal/markup"
	"github.com/gogpu/svgattr/node"
	"github.com/gogpu/svgattr/propbag/memstore"
)

// errInvalidAttributes is returned in --strict mode when any element had an
// invalid attribute.
var errInvalidAttributes = errors.New("document has invalid attributes")

// elementReport is the output record of one resolved element.
type elementReport struct {
	Element    string            `json:"element" yaml:"element"`
	ID         string            `json:"id,omitempty" yaml:"id,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Error      string            `json:"error,omitempty" yaml:"error,omitempty"`
	InvalidKey string            `json:"invalid_attribute,omitempty" yaml:"invalid_attribute,omitempty"`
}

// parsed is an element whose attributes were read, kept until paint
// server templates have been applied.
type parsed struct {
	id   string
	node node.Node
	err  error
}

func newInspectCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the resolved attributes of every known element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			return inspect(f, cmd.OutOrStdout(), cfg)
		},
	}
	cmd.Flags().String(cfgKeyFormat, "yaml", "output format: yaml or json")
	cmd.Flags().Bool(cfgKeyStrict, false, "exit with an error if any attribute is invalid")
	cmd.Flags().Bool(cfgKeyForeign, false, "also visit elements outside the SVG namespace")
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}
	return cmd
}

func inspect(r io.Reader, w io.Writer, cfg config) error {
	var opts []markup.Option
	if cfg.Foreign {
		opts = append(opts, markup.WithForeignElements())
	}

	var elems []parsed
	store := memstore.New()
	err := markup.Walk(r, store, func(el markup.Element) error {
		n, ok := node.New(el.Name)
		if !ok {
			return nil
		}
		id, _ := el.Attrs.Lookup("id")
		elems = append(elems, parsed{id: id, node: n, err: n.SetAttributes(el.Attrs)})
		return nil
	}, opts...)
	if err != nil {
		return err
	}

	applyTemplates(elems)

	reports := make([]elementReport, 0, len(elems))
	invalid := false
	for _, p := range elems {
		rep := elementReport{Element: p.node.Name(), ID: p.id}
		if p.err != nil {
			invalid = true
			rep.Error = p.err.Error()
			var ae *svgattr.AttributeError
			if errors.As(p.err, &ae) {
				rep.InvalidKey = ae.Key
			}
		} else {
			rep.Attributes = describe(p.node)
		}
		reports = append(reports, rep)
	}

	if err := encode(w, cfg.Format, reports); err != nil {
		return err
	}
	if invalid && cfg.Strict {
		return errInvalidAttributes
	}
	return nil
}

// applyTemplates lets each paint server inherit unset attributes from the
// chain of same-kind paint servers its href points to. Cycles stop the
// chain.
func applyTemplates(elems []parsed) {
	byID := make(map[string]node.Node)
	for _, p := range elems {
		if p.id != "" && p.err == nil {
			byID[p.id] = p.node
		}
	}

	for _, p := range elems {
		if p.err != nil {
			continue
		}
		seen := map[node.Node]bool{p.node: true}
		cur := p.node
		for {
			t, ok := byID[strings.TrimPrefix(href(cur), "#")]
			if !ok || seen[t] {
				break
			}
			seen[t] = true
			switch g := p.node.(type) {
			case *node.LinearGradient:
				if tg, ok := t.(*node.LinearGradient); ok {
					g.Inherit(tg)
				}
			case *node.RadialGradient:
				if tg, ok := t.(*node.RadialGradient); ok {
					g.Inherit(tg)
				}
			case *node.Pattern:
				if tp, ok := t.(*node.Pattern); ok {
					g.Inherit(tp)
				}
			}
			cur = t
		}
	}
}

func href(n node.Node) string {
	switch g := n.(type) {
	case *node.LinearGradient:
		return g.Href
	case *node.RadialGradient:
		return g.Href
	case *node.Pattern:
		return g.Href
	}
	return ""
}

// describe renders the resolved attributes of n as strings.
func describe(n node.Node) map[string]string {
	switch g := n.(type) {
	case *node.LinearGradient:
		r := g.Resolved()
		return map[string]string{
			"x1": r.X1.String(), "y1": r.Y1.String(), "x2": r.X2.String(), "y2": r.Y2.String(),
			"gradientUnits": r.Units.String(),
			"spreadMethod":  r.Spread.String(),
		}
	case *node.RadialGradient:
		r := g.Resolved()
		return map[string]string{
			"cx": r.Cx.String(), "cy": r.Cy.String(), "r": r.R.String(),
			"fx": r.Fx.String(), "fy": r.Fy.String(),
			"gradientUnits": r.Units.String(),
			"spreadMethod":  r.Spread.String(),
		}
	case *node.Pattern:
		r := g.Resolved()
		return map[string]string{
			"x": r.X.String(), "y": r.Y.String(), "width": r.Width.String(), "height": r.Height.String(),
			"patternUnits":        r.Units.String(),
			"patternContentUnits": r.ContentUnits.String(),
		}
	case *node.Circle:
		return map[string]string{"cx": g.Cx.String(), "cy": g.Cy.String(), "r": g.R.String()}
	case *node.Ellipse:
		return map[string]string{"cx": g.Cx.String(), "cy": g.Cy.String(), "rx": g.Rx.String(), "ry": g.Ry.String()}
	case *node.Poly:
		pts := g.Points()
		parts := make([]string, len(pts))
		for i, pt := range pts {
			parts[i] = strconv.FormatFloat(pt.X, 'g', -1, 64) + "," + strconv.FormatFloat(pt.Y, 'g', -1, 64)
		}
		return map[string]string{"points": strings.Join(parts, " ")}
	}
	return nil
}

func encode(w io.Writer, format string, reports []elementReport) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w, got %q", errBadFormat, format)
}
