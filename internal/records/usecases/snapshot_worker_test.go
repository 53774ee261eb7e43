package usecases_test

import (
	"context"
	"time"

	"recordbook-server/internal/infra/async"
	"recordbook-server/internal/records/domain"
	"recordbook-server/internal/records/usecases"
	mockusecases "recordbook-server/test/unit/doubles/records/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("SnapshotWorker", func() {
	var (
		ctrl     *gomock.Controller
		mockRepo *mockusecases.MockRowRepository
		broker   *async.LocalBroker
		service  *usecases.SimpleSheetService
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		mockRepo = mockusecases.NewMockRowRepository(ctrl)
		broker = async.NewLocalBroker()

		var err error
		service, err = usecases.NewSheetService(usecases.SheetServiceConfig{ValidationBypass: true, ChartMinYear: 2001}, mockRepo, broker)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})

	ginkgo.AfterEach(func() {
		broker.Stop()
		ctrl.Finish()
	})

	ginkgo.It("should reject an invalid schedule", func() {
		_, err := usecases.NewSnapshotWorker("every now and then", service)
		gomega.Expect(err).To(gomega.HaveOccurred())
	})

	ginkgo.It("should take a final snapshot when cancelled", func() {
		_, err := service.AppendRow(context.Background(), domain.SheetMeasurements, domain.FormValues{
			domain.LabelField: "a",
			domain.ValueField: "1",
		})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		saved := make(chan struct{}, 1)
		mockRepo.EXPECT().
			SaveSnapshot(gomock.Any(), domain.SheetMeasurements, gomock.Any()).
			DoAndReturn(func(context.Context, domain.SheetKind, []domain.Row) error {
				saved <- struct{}{}
				return nil
			}).
			Times(1)

		worker, err := usecases.NewSnapshotWorker("@every 1h", service)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go worker.Run(ctx, func() { close(done) })

		cancel()
		gomega.Eventually(done, 2*time.Second).Should(gomega.BeClosed())
		gomega.Expect(saved).To(gomega.Receive())

		// a second shutdown is a no-op
		worker.Shutdown()
	})
})
