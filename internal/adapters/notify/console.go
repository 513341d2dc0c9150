package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/alejandrodnm/flipsim/internal/domain"
	"github.com/olekukonko/tablewriter"
)

// Console implementa ports.Notifier.
type Console struct {
	out   io.Writer
	table bool
}

// NewConsole crea un notificador que escribe a stdout.
func NewConsole(table bool) *Console {
	return &Console{out: os.Stdout, table: table}
}

// NewConsoleWriter crea un notificador para tests.
func NewConsoleWriter(w io.Writer, table bool) *Console {
	return &Console{out: w, table: table}
}

// Notify imprime el resumen en el modo configurado.
func (c *Console) Notify(_ context.Context, s domain.Summary) error {
	if c.table {
		return c.printTable(s)
	}
	return c.printPlain(s)
}

// printPlain imprime las siete estadísticas y el tiempo, una por línea.
func (c *Console) printPlain(s domain.Summary) error {
	lines := []string{
		"Average payoff: " + formatFloat(s.AveragePayoff),
		"Min payoff: " + strconv.Itoa(s.MinPayoff),
		"Max payoff: " + strconv.Itoa(s.MaxPayoff),
		"Standard deviation of payoff: " + formatFloat(s.StdDev),
		"Expectation: " + formatFloat(s.Expectation),
		"Cumulative heads probability: " + formatFloat(s.CummHeadsP),
		"Cumulative tails probability: " + formatFloat(s.CummTailsP),
		fmt.Sprintf("Time taken: %d seconds", s.ElapsedSeconds()),
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(c.out, l); err != nil {
			return fmt.Errorf("notify.Console: write: %w", err)
		}
	}
	return nil
}

// printTable imprime las estadísticas y la distribución de payoffs en tablas.
func (c *Console) printTable(s domain.Summary) error {
	seed := "random"
	if s.Seed != 0 {
		seed = strconv.FormatUint(s.Seed, 10)
	}
	fmt.Fprintf(c.out, "\nrun %s: %d trials, max %d flips, seed %s\n",
		s.RunID, s.Trials, s.FlipsTotal, seed)

	stats := tablewriter.NewWriter(c.out)
	stats.Header("Statistic", "Value")
	stats.Append("Average payoff", formatFloat(s.AveragePayoff))
	stats.Append("Min payoff", strconv.Itoa(s.MinPayoff))
	stats.Append("Max payoff", strconv.Itoa(s.MaxPayoff))
	stats.Append("Std dev", formatFloat(s.StdDev))
	stats.Append("Expectation", formatFloat(s.Expectation))
	stats.Append("Cumm heads p", formatFloat(s.CummHeadsP))
	stats.Append("Cumm tails p", formatFloat(s.CummTailsP))
	if err := stats.Render(); err != nil {
		return fmt.Errorf("notify.Console: render stats: %w", err)
	}

	if len(s.PayoffCounts) > 0 {
		dist := tablewriter.NewWriter(c.out)
		dist.Header("Payoff", "Flips", "Trials", "Share")
		for _, payoff := range sortedPayoffs(s.PayoffCounts) {
			count := s.PayoffCounts[payoff]
			dist.Append(
				strconv.Itoa(payoff),
				strconv.Itoa(domain.BasePayoff-payoff),
				strconv.Itoa(count),
				fmt.Sprintf("%.2f%%", pct(count, s.Trials)),
			)
		}
		if err := dist.Render(); err != nil {
			return fmt.Errorf("notify.Console: render distribution: %w", err)
		}
	}

	fmt.Fprintf(c.out, "Time taken: %d seconds\n", s.ElapsedSeconds())
	return nil
}

// --- helpers ---

// formatFloat imita la salida por defecto de un ostream: %g con 6 cifras significativas.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// sortedPayoffs devuelve los payoffs de mayor a menor (menos lanzamientos primero).
func sortedPayoffs(counts map[int]int) []int {
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))
	return keys
}

func pct(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
