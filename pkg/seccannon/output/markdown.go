package output

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/ygo-tools/seccannon/pkg/seccannon/models"
)

// WriteMarkdown renders the solutions as a markdown table on w. The stars
// column is filled only on the first row of each group of equal stars,
// mirroring the merged cells of the spreadsheet.
func WriteMarkdown(solutions []models.Solution, w io.Writer) error {
	rows := make([][]string, len(solutions))
	for i, sol := range solutions {
		stars := ""
		if i == 0 || solutions[i-1].Stars != sol.Stars {
			stars = strconv.Itoa(sol.Stars)
		}
		rows[i] = []string{
			stars,
			strconv.Itoa(sol.NbCards),
			strconv.Itoa(sol.XYZ),
			strconv.Itoa(sol.Fusion),
		}
	}

	md := markdown.NewMarkdown(w)
	md.H1("Simultaneous Equation Cannon solutions")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: headers,
		Rows:   rows,
	})
	return md.Build()
}
