package domain_test

import (
	"fmt"
	"recordbook-server/internal/records/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func sequentialIDs() domain.IDGenerator {
	n := 0
	return func() domain.ID {
		n++
		return domain.ID(fmt.Sprintf("row-%d", n))
	}
}

var _ = Describe("Store", func() {
	var store *domain.Store
	var events []domain.ChangeEvent

	BeforeEach(func() {
		store = domain.NewStore(domain.WithIDGenerator(sequentialIDs()))
		events = nil
		store.Observe(func(e domain.ChangeEvent) {
			events = append(events, e)
		})
	})

	Context("Append", func() {
		It("should add rows at the end with fresh ids", func() {
			first := store.Append([]string{"a"})
			second := store.Append([]string{"b"})

			Expect(store.Len()).To(Equal(2))
			Expect(first.ID).To(Equal(domain.ID("row-1")))
			Expect(second.ID).To(Equal(domain.ID("row-2")))
			Expect(store.Rows()[1].Fields).To(Equal([]string{"b"}))
		})

		It("should not alias the caller's slice", func() {
			fields := []string{"a", "b"}
			store.Append(fields)
			fields[0] = "changed"
			Expect(store.Rows()[0].Fields[0]).To(Equal("a"))
		})

		It("should notify observers with the resulting rows", func() {
			store.Append([]string{"a"})
			Expect(events).To(HaveLen(1))
			Expect(events[0].Kind).To(Equal(domain.ChangeAppended))
			Expect(events[0].Index).To(Equal(0))
			Expect(events[0].Rows).To(HaveLen(1))
		})
	})

	Context("UpdateAt", func() {
		BeforeEach(func() {
			store.Append([]string{"a"})
			store.Append([]string{"b"})
		})

		It("should replace fields in place and keep the id", func() {
			row, err := store.UpdateAt(1, []string{"B"})
			Expect(err).NotTo(HaveOccurred())
			Expect(row.ID).To(Equal(domain.ID("row-2")))
			Expect(store.Len()).To(Equal(2))
			Expect(store.Rows()[1].Fields).To(Equal([]string{"B"}))
		})

		When("the index is out of range", func() {
			It("should fail and leave the store untouched", func() {
				before := store.Rows()
				_, err := store.UpdateAt(2, []string{"x"})
				Expect(err).To(MatchError(domain.ErrRowIndexOutOfRange))
				_, err = store.UpdateAt(-1, []string{"x"})
				Expect(err).To(MatchError(domain.ErrRowIndexOutOfRange))
				Expect(store.Rows()).To(Equal(before))
			})
		})
	})

	Context("RemoveAt", func() {
		BeforeEach(func() {
			store.Append([]string{"a"})
			store.Append([]string{"b"})
			store.Append([]string{"c"})
		})

		It("should shift later rows left", func() {
			removed, err := store.RemoveAt(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(removed.Fields).To(Equal([]string{"a"}))
			Expect(store.Len()).To(Equal(2))
			Expect(store.Rows()[0].Fields).To(Equal([]string{"b"}))
			Expect(store.IndexOf("row-3")).To(Equal(1))
		})

		It("should fail on an unknown index", func() {
			_, err := store.RemoveAt(3)
			Expect(err).To(MatchError(domain.ErrRowIndexOutOfRange))
			Expect(store.Len()).To(Equal(3))
		})

		It("should fail on an unknown id", func() {
			_, err := store.RemoveByID("missing")
			Expect(err).To(MatchError(domain.ErrRowNotFound))
		})
	})

	Context("ReplaceAll", func() {
		It("should install new rows with fresh ids", func() {
			store.Append([]string{"old"})
			store.ReplaceAll([][]string{{"a", "b"}, {"c", "d"}})

			rows := store.Rows()
			Expect(rows).To(HaveLen(2))
			Expect(rows[0].ID).To(Equal(domain.ID("row-2")))
			Expect(rows[1].Fields).To(Equal([]string{"c", "d"}))
			Expect(events[len(events)-1].Kind).To(Equal(domain.ChangeReplaced))
		})
	})

	Context("Restore", func() {
		It("should keep persisted ids", func() {
			store.Restore([]domain.Row{{ID: "persisted", Fields: []string{"x"}}})
			Expect(store.IndexOf("persisted")).To(Equal(0))
		})
	})

	It("should keep length equal to appends minus removals", func() {
		appends, removals := 0, 0
		for i := 0; i < 20; i++ {
			switch i % 4 {
			case 0, 1, 2:
				store.Append([]string{fmt.Sprint(i)})
				appends++
			case 3:
				_, err := store.UpdateAt(0, []string{"u"})
				Expect(err).NotTo(HaveOccurred())
				_, err = store.RemoveAt(store.Len() - 1)
				Expect(err).NotTo(HaveOccurred())
				removals++
			}
			Expect(store.Len()).To(Equal(appends - removals))
		}
	})
})
