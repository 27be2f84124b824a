package milp

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// WriteLP renders the model in CPLEX LP text format so it can be handed to
// an external optimization engine. Variable names come from the model;
// constraint names are the row label suffixed with the row index to keep
// them unique.
func WriteLP(w io.Writer, m *Model) error {
	if err := m.Validate(); err != nil {
		return err
	}

	var b strings.Builder

	if m.Name != "" {
		fmt.Fprintf(&b, "\\ Problem: %s\n", m.Name)
	}

	if m.Sense == Maximize {
		b.WriteString("Maximize\n")
	} else {
		b.WriteString("Minimize\n")
	}
	b.WriteString(" obj:")
	wroteObj := false
	for i, v := range m.Vars {
		if v.Obj == 0 {
			continue
		}
		writeTerm(&b, v.Obj, varName(m, i), !wroteObj)
		wroteObj = true
	}
	if !wroteObj {
		b.WriteString(" 0")
	}
	b.WriteByte('\n')

	b.WriteString("Subject To\n")
	for ci, c := range m.Constraints {
		label := c.Label
		if label == "" {
			label = "c"
		}
		fmt.Fprintf(&b, " %s_%d:", label, ci)
		for i, t := range c.Terms {
			writeTerm(&b, t.Coef, varName(m, t.Var), i == 0)
		}
		fmt.Fprintf(&b, " %s %s\n", c.Op, num(c.RHS))
	}

	b.WriteString("Bounds\n")
	for i, v := range m.Vars {
		if v.Type == Binary {
			continue
		}
		if math.IsInf(v.Upper, 1) {
			fmt.Fprintf(&b, " %s >= %s\n", varName(m, i), num(v.Lower))
		} else {
			fmt.Fprintf(&b, " %s <= %s <= %s\n", num(v.Lower), varName(m, i), num(v.Upper))
		}
	}

	var binaries []string
	for i, v := range m.Vars {
		if v.Type == Binary {
			binaries = append(binaries, varName(m, i))
		}
	}
	if len(binaries) > 0 {
		b.WriteString("Binaries\n")
		for start := 0; start < len(binaries); start += 10 {
			end := min(start+10, len(binaries))
			fmt.Fprintf(&b, " %s\n", strings.Join(binaries[start:end], " "))
		}
	}

	b.WriteString("End\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func varName(m *Model, i int) string {
	if m.Vars[i].Name != "" {
		return m.Vars[i].Name
	}
	return fmt.Sprintf("v%d", i)
}

// writeTerm appends "+ c name" / "- c name", dropping unit coefficients.
func writeTerm(b *strings.Builder, coef float64, name string, first bool) {
	mag := math.Abs(coef)
	switch {
	case coef < 0:
		b.WriteString(" -")
	case first:
	default:
		b.WriteString(" +")
	}
	if mag != 1 {
		fmt.Fprintf(b, " %s", num(mag))
	}
	fmt.Fprintf(b, " %s", name)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
