package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"recordbook-server/internal/infra/cache"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Cache", func() {
	var (
		cacheInstance cache.Cache
		ctx           context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		cacheInstance, err = cache.New(nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ctx = context.Background()
	})

	ginkgo.Context("Set and Get", func() {
		ginkgo.It("should store and retrieve the value", func() {
			gomega.Expect(cacheInstance.Set(ctx, "chart", []byte("png"), 0)).To(gomega.BeTrue())

			value, found := cacheInstance.Get(ctx, "chart")
			gomega.Expect(found).To(gomega.BeTrue())
			gomega.Expect(value).To(gomega.Equal([]byte("png")))
		})

		ginkgo.It("should expire values after their TTL", func() {
			cacheInstance.Set(ctx, "chart", []byte("png"), 20*time.Millisecond)

			gomega.Eventually(func() bool {
				_, found := cacheInstance.Get(ctx, "chart")
				return found
			}).WithTimeout(2 * time.Second).Should(gomega.BeFalse())
		})

		ginkgo.It("should ignore a cancelled context", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			gomega.Expect(cacheInstance.Set(cancelled, "chart", []byte("png"), 0)).To(gomega.BeFalse())
			_, found := cacheInstance.Get(ctx, "chart")
			gomega.Expect(found).To(gomega.BeFalse())
		})
	})

	ginkgo.Context("Delete", func() {
		ginkgo.It("should remove the value", func() {
			cacheInstance.Set(ctx, "chart", []byte("png"), 0)
			cacheInstance.Delete(ctx, "chart")

			_, found := cacheInstance.Get(ctx, "chart")
			gomega.Expect(found).To(gomega.BeFalse())
		})
	})

	ginkgo.Context("GetOrSet", func() {
		ginkgo.It("should load once and serve the cached value afterwards", func() {
			var loads atomic.Int32
			loader := func() ([]byte, error) {
				loads.Add(1)
				return []byte("png"), nil
			}

			for range 3 {
				value, err := cacheInstance.GetOrSet(ctx, "chart", time.Minute, loader)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(value).To(gomega.Equal([]byte("png")))
			}
			gomega.Expect(loads.Load()).To(gomega.Equal(int32(1)))
		})

		ginkgo.It("should not cache loader failures", func() {
			boom := errors.New("boom")
			_, err := cacheInstance.GetOrSet(ctx, "chart", time.Minute, func() ([]byte, error) {
				return nil, boom
			})
			gomega.Expect(err).To(gomega.MatchError(boom))

			_, found := cacheInstance.Get(ctx, "chart")
			gomega.Expect(found).To(gomega.BeFalse())
		})

		ginkgo.It("should return the context error when cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := cacheInstance.GetOrSet(cancelled, "chart", time.Minute, func() ([]byte, error) {
				return []byte("png"), nil
			})
			gomega.Expect(err).To(gomega.MatchError(context.Canceled))
		})

		ginkgo.It("should be safe for concurrent callers", func() {
			var wg sync.WaitGroup
			for range 20 {
				wg.Add(1)
				go func() {
					defer ginkgo.GinkgoRecover()
					defer wg.Done()
					value, err := cacheInstance.GetOrSet(ctx, "chart", time.Minute, func() ([]byte, error) {
						return []byte("png"), nil
					})
					gomega.Expect(err).NotTo(gomega.HaveOccurred())
					gomega.Expect(value).To(gomega.Equal([]byte("png")))
				}()
			}
			wg.Wait()
		})
	})
})
