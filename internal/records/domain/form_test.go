package domain_test

import (
	"recordbook-server/internal/records/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type stubValidator struct {
	errs domain.ValidationErrors
}

func (v stubValidator) Validate(domain.FormValues) domain.ValidationErrors {
	return v.errs
}

func fill(form *domain.FormController, values map[domain.FieldName]string) {
	for name, value := range values {
		Expect(form.SetField(name, value)).To(Succeed())
	}
}

var _ = Describe("FormController", func() {
	var store *domain.Store
	var form *domain.FormController
	var validator *stubValidator

	alice := map[domain.FieldName]string{
		domain.NameField:     "Alice",
		domain.AgeField:      "30",
		domain.EmailField:    "alice@example.com",
		domain.SalaryField:   "5000",
		domain.JoinDateField: "2020-01-01",
	}

	BeforeEach(func() {
		store = domain.NewStore(domain.WithIDGenerator(sequentialIDs()))
		validator = &stubValidator{}
		form = domain.NewFormController(domain.EmployeeSchema, store, validator)
	})

	Context("SetField", func() {
		It("should reject fields outside the schema", func() {
			err := form.SetField("salary_band", "x")
			Expect(err).To(MatchError(domain.ErrUnknownField))
		})
	})

	Context("Submit in new-row mode", func() {
		It("should append the row in canonical order and reset", func() {
			fill(form, alice)
			row, err := form.Submit()

			Expect(err).NotTo(HaveOccurred())
			Expect(row.Fields).To(Equal([]string{"Alice", "30", "alice@example.com", "5000", "2020-01-01"}))
			Expect(store.Len()).To(Equal(1))

			state := form.State()
			Expect(state.EditingIndex).To(Equal(-1))
			Expect(state.Values).To(HaveKeyWithValue(domain.NameField, ""))
			Expect(state.SubmitLabel).To(Equal(domain.SubmitLabelAdd))
		})

		When("validation fails", func() {
			BeforeEach(func() {
				validator.errs = domain.ValidationErrors{domain.NameField: "Name is required"}
			})

			It("should keep every piece of state", func() {
				fill(form, alice)
				_, err := form.Submit()

				Expect(err).To(MatchError(domain.ErrValidationFailed))
				var verr *domain.ValidationError
				Expect(err).To(BeAssignableToTypeOf(verr))
				Expect(store.Len()).To(Equal(0))
				Expect(form.State().Values).To(HaveKeyWithValue(domain.NameField, "Alice"))
				Expect(form.State().Errors).To(HaveKeyWithValue(domain.NameField, "Name is required"))
			})
		})
	})

	Context("BeginEdit", func() {
		BeforeEach(func() {
			store.Append([]string{"Bob", "40", "bob@example.com", "7000", "1999-05-01"})
			store.Append([]string{"Carol", "35", "carol@example.com", "6500", "2005-03-12"})
		})

		It("should load the row and switch to update mode", func() {
			Expect(form.BeginEdit(1)).To(Succeed())

			state := form.State()
			Expect(state.EditingIndex).To(Equal(1))
			Expect(state.Values).To(HaveKeyWithValue(domain.NameField, "Carol"))
			Expect(state.Values).To(HaveKeyWithValue(domain.JoinDateField, "2005-03-12"))
			Expect(state.SubmitLabel).To(Equal(domain.SubmitLabelUpdate))
		})

		It("should fail on an out-of-range index", func() {
			Expect(form.BeginEdit(5)).To(MatchError(domain.ErrRowIndexOutOfRange))
			Expect(form.EditingIndex()).To(Equal(-1))
		})

		It("should leave the row unchanged when submitted as is", func() {
			before := store.Rows()
			Expect(form.BeginEdit(0)).To(Succeed())
			_, err := form.Submit()

			Expect(err).NotTo(HaveOccurred())
			Expect(store.Rows()).To(Equal(before))
			Expect(form.EditingIndex()).To(Equal(-1))
		})

		It("should keep short imported rows unchanged when submitted as is", func() {
			store.ReplaceAll([][]string{{""}, {"x", "1", "x@y.z", "2", "2001-01-01", "extra"}})
			before := store.Rows()

			Expect(form.BeginEdit(0)).To(Succeed())
			_, err := form.Submit()
			Expect(err).NotTo(HaveOccurred())

			Expect(form.BeginEdit(1)).To(Succeed())
			_, err = form.Submit()
			Expect(err).NotTo(HaveOccurred())

			Expect(store.Rows()).To(Equal(before))
		})

		It("should overwrite the row in place on submit", func() {
			Expect(form.BeginEdit(0)).To(Succeed())
			Expect(form.SetField(domain.SalaryField, "7500")).To(Succeed())
			row, err := form.Submit()

			Expect(err).NotTo(HaveOccurred())
			Expect(row.ID).To(Equal(domain.ID("row-1")))
			Expect(store.Len()).To(Equal(2))
			Expect(store.Rows()[0].Fields[3]).To(Equal("7500"))
		})
	})

	Context("CancelOrDelete", func() {
		BeforeEach(func() {
			store.Append([]string{"a", "1", "a@b.c", "1", "2020-01-01"})
			store.Append([]string{"b", "2", "b@b.c", "2", "2020-01-02"})
			store.Append([]string{"c", "3", "c@b.c", "3", "2020-01-03"})
		})

		It("should reset the form when the edited row is deleted", func() {
			Expect(form.BeginEdit(1)).To(Succeed())
			_, err := form.CancelOrDelete(1)

			Expect(err).NotTo(HaveOccurred())
			state := form.State()
			Expect(state.EditingIndex).To(Equal(-1))
			Expect(state.Values).To(HaveKeyWithValue(domain.NameField, ""))
		})

		It("should follow the edited row when an earlier row is deleted", func() {
			Expect(form.BeginEdit(2)).To(Succeed())
			_, err := form.CancelOrDelete(0)

			Expect(err).NotTo(HaveOccurred())
			Expect(form.EditingIndex()).To(Equal(1))

			Expect(form.SetField(domain.NameField, "C")).To(Succeed())
			_, err = form.Submit()
			Expect(err).NotTo(HaveOccurred())
			Expect(store.Rows()[1].Fields[0]).To(Equal("C"))
			Expect(store.Rows()[0].Fields[0]).To(Equal("b"))
		})

		It("should keep editing when a later row is deleted", func() {
			Expect(form.BeginEdit(0)).To(Succeed())
			_, err := form.CancelOrDelete(2)
			Expect(err).NotTo(HaveOccurred())
			Expect(form.EditingIndex()).To(Equal(0))
		})

		It("should fail on an out-of-range index", func() {
			_, err := form.CancelOrDelete(10)
			Expect(err).To(MatchError(domain.ErrRowIndexOutOfRange))
			Expect(store.Len()).To(Equal(3))
		})
	})

	Context("ReplaceAll", func() {
		It("should discard an in-progress edit", func() {
			store.Append([]string{"a"})
			Expect(form.BeginEdit(0)).To(Succeed())

			store.ReplaceAll([][]string{{"x"}})
			Expect(form.EditingIndex()).To(Equal(-1))
			Expect(form.SubmitLabel()).To(Equal(domain.SubmitLabelAdd))
		})
	})
})
