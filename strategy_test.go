package inject_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/andriiyaremenko/inject"
)

var _ = Describe("Strategy", func() {
	DescribeTable("should be printed as Create/Destroy",
		func(strategy inject.Strategy, expected string) {
			Expect(strategy.String()).To(Equal(expected))
		},
		Entry("Singleton", inject.Singleton, "Shared/NeverReleased"),
		Entry("Shared", inject.Shared, "Shared/ReleasedWhenUnreferenced"),
		Entry("OnDemand", inject.OnDemand, "PerConsumer/ReleasedWhenUnreferenced"),
		Entry("pitfall",
			inject.Strategy{Create: inject.PerConsumer, Destroy: inject.NeverReleased},
			"PerConsumer/NeverReleased",
		),
		Entry("unknown",
			inject.Strategy{Create: inject.Instantiation(7), Destroy: inject.Deallocation(9)},
			"Instantiation(7)/Deallocation(9)",
		),
	)

	It("should default to PerConsumer and NeverReleased", func() {
		var strategy inject.Strategy

		Expect(strategy.Create).To(Equal(inject.PerConsumer))
		Expect(strategy.Destroy).To(Equal(inject.NeverReleased))
		Expect(strategy.Pitfall()).To(BeTrue())
	})

	It("should flag only PerConsumer NeverReleased as pitfall", func() {
		Expect(inject.Singleton.Pitfall()).To(BeFalse())
		Expect(inject.Shared.Pitfall()).To(BeFalse())
		Expect(inject.OnDemand.Pitfall()).To(BeFalse())
	})

	It("should keep Strategy on Declaration", func() {
		d := inject.Provide(inject.Shared, func() int { return 1 }, inject.WithName("one"))

		Expect(d.Strategy()).To(Equal(inject.Shared))
		Expect(d.Name()).To(Equal("one"))
		Expect(d.String()).To(Equal("one"))
	})

	It("should name Declaration after type and site by default", func() {
		d := inject.Provide(inject.Shared, func() int { return 1 })

		Expect(d.Name()).To(HavePrefix("int@strategy_test.go:"))
		Expect(d.Site().Function).To(ContainSubstring("inject_test"))
		Expect(d.Site().Line).To(BeNumerically(">", 0))
	})
})
