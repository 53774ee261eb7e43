package chart_test

import (
	"encoding/json"
	"math"
	"recordbook-server/internal/records/chart"
	"recordbook-server/internal/records/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func employeeRow(name, salary, joinDate string) domain.Row {
	return domain.Row{ID: domain.ID(name), Fields: []string{name, "30", name + "@example.com", salary, joinDate}}
}

func labelTexts(s chart.Series) []string {
	out := make([]string, len(s.Labels))
	for i, l := range s.Labels {
		out[i] = l.Text
	}
	return out
}

var _ = Describe("Projections", func() {
	rows := []domain.Row{
		employeeRow("ann", "5000", "2020-01-01"),
		employeeRow("bob", "4000", "1999-12-31"),
		employeeRow("cid", "abc", "2001-01-01"),
		employeeRow("dee", "6000", "not a date"),
		employeeRow("eve", "7000", "2000-12-31"),
		employeeRow("fay", "8000", "2010-06-15"),
	}

	Context("salary line", func() {
		It("should keep every row in store order", func() {
			series := chart.NewSalaryLine().Project(rows)

			Expect(series.Kind).To(Equal(chart.KindLine))
			Expect(labelTexts(series)).To(Equal([]string{"2020-01-01", "1999-12-31", "2001-01-01", "not a date", "2000-12-31", "2010-06-15"}))
			Expect(series.Values[0]).To(Equal(chart.Number(5000)))
			Expect(math.IsNaN(float64(series.Values[2]))).To(BeTrue())
			Expect(series.Labels[3].Valid).To(BeFalse())
		})
	})

	Context("salary bars", func() {
		It("should drop rows joining before the minimum year", func() {
			series := chart.NewSalaryBars(2001).Project(rows)

			Expect(series.Kind).To(Equal(chart.KindBar))
			Expect(labelTexts(series)).To(Equal([]string{"2020-01-01", "2001-01-01", "2010-06-15"}))
		})

		It("should still pass non-numeric salaries through", func() {
			series := chart.NewSalaryBars(2001).Project(rows)
			Expect(series.Values[1].Finite()).To(BeFalse())
		})
	})

	Context("measurement bars", func() {
		It("should plot values by label", func() {
			series := chart.ValueByLabel{}.Project([]domain.Row{
				{ID: "1", Fields: []string{"cpu", "0.5"}},
				{ID: "2", Fields: []string{"mem"}},
			})
			Expect(labelTexts(series)).To(Equal([]string{"cpu", "mem"}))
			Expect(series.Values[0]).To(Equal(chart.Number(0.5)))
			Expect(series.Values[1].Finite()).To(BeFalse())
		})
	})

	Context("JSON encoding", func() {
		It("should encode NaN and invalid dates as null", func() {
			series := chart.NewSalaryLine().Project(rows[2:4])
			labels, err := json.Marshal(series.Labels)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(labels)).To(Equal(`["2001-01-01T00:00:00Z",null]`))

			values, err := json.Marshal(series.Values)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(values)).To(Equal(`[null,6000]`))
		})
	})

	It("should list projections per sheet", func() {
		Expect(chart.ProjectionsFor(domain.SheetEmployees, 2001)).To(HaveLen(2))
		Expect(chart.ProjectionsFor(domain.SheetMeasurements, 2001)).To(HaveLen(1))
	})
})
