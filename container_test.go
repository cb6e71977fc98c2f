package inject_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/andriiyaremenko/inject"
)

var _ = Describe("Container", func() {
	var (
		c       *inject.Container
		counter *factoryCounter
	)

	BeforeEach(func() {
		c = inject.NewContainer()
		counter = new(factoryCounter)
	})

	It("should return the same Slot for the same Declaration", func() {
		d := inject.Declare(inject.Singleton, counter.service)

		Expect(inject.SlotFor(c, d)).To(BeIdenticalTo(inject.SlotFor(c, d)))
		Expect(c.Len()).To(Equal(1))
	})

	It("should return different Slots for structurally equal Declarations", func() {
		d1 := inject.Declare(inject.Singleton, counter.service)
		d2 := inject.Declare(inject.Singleton, counter.service)

		Expect(inject.SlotFor(c, d1)).NotTo(BeIdenticalTo(inject.SlotFor(c, d2)))
		Expect(newConsumer(c, d1).Service()).NotTo(BeIdenticalTo(newConsumer(c, d2).Service()))
		Expect(c.Len()).To(Equal(2))
	})

	It("should create Slot lazily", func() {
		d := inject.Declare(inject.Singleton, counter.service)
		consumer := newConsumer(c, d)

		Expect(c.Len()).To(Equal(0))

		consumer.Service()

		Expect(c.Len()).To(Equal(1))
	})

	It("should keep Slot configuration of Declaration", func() {
		d := inject.Declare(inject.Shared, counter.service, inject.WithName("service"))
		slot := inject.SlotFor(c, d)

		Expect(slot.Name()).To(Equal("service"))
		Expect(slot.Strategy()).To(Equal(inject.Shared))
		Expect(slot.Overridden()).To(BeFalse())
	})

	It("should isolate instances of different containers", func() {
		d := inject.Declare(inject.Singleton, counter.service)
		other := inject.NewContainer()

		Expect(newConsumer(c, d).Service()).NotTo(BeIdenticalTo(newConsumer(other, d).Service()))
		Expect(counter.calls).To(Equal(2))
	})

	It("should drop slots, storage and overrides on Reset", func() {
		d := inject.Declare(inject.Singleton, counter.service)
		pinned := newConsumer(c, d)
		first := pinned.Service()

		inject.Override(c, d, func(base inject.Factory[*Service]) (*Service, error) { return base() })

		c.Reset()

		Expect(c.Len()).To(Equal(0))
		Expect(inject.SlotFor(c, d).Overridden()).To(BeFalse())
		Expect(pinned.Service()).To(BeIdenticalTo(first))

		second := newConsumer(c, d).Service()
		Expect(second).NotTo(BeIdenticalTo(first))
		Expect(newConsumer(c, d).Service()).To(BeIdenticalTo(second))
	})

	It("should panic on nil container or declaration", func() {
		d := inject.Declare(inject.Singleton, counter.service)

		Expect(func() { inject.SlotFor(nil, d) }).To(PanicWith(MatchError(inject.ErrNilContainer)))
		Expect(func() { inject.SlotFor[*Service](c, nil) }).To(PanicWith(MatchError(inject.ErrNilDeclaration)))
		Expect(func() { inject.NewInstance(nil, d) }).To(PanicWith(MatchError(inject.ErrNilContainer)))
		Expect(func() { inject.NewInstance[*Service](c, nil) }).To(PanicWith(MatchError(inject.ErrNilDeclaration)))
	})

	It("should panic on nil factory", func() {
		Expect(func() { inject.Declare[*Service](inject.Singleton, nil) }).
			To(PanicWith(MatchError(inject.ErrNilFactory)))
		Expect(func() { inject.Provide[*Service](inject.Singleton, nil) }).
			To(PanicWith(MatchError(inject.ErrNilFactory)))
	})

	Context("strategy warnings", func() {
		var hook *test.Hook

		BeforeEach(func() {
			var l *logrus.Logger
			l, hook = test.NewNullLogger()

			inject.SetDefaultLogger(l)
			DeferCleanup(func() { inject.SetDefaultLogger(nil) })
		})

		pitfall := inject.Strategy{Create: inject.PerConsumer, Destroy: inject.NeverReleased}

		It("should warn about PerConsumer NeverReleased declaration", func() {
			d := inject.Declare(pitfall, counter.service, inject.WithName("ghost"))

			inject.SlotFor(c, d)

			Expect(hook.Entries).To(HaveLen(1))
			Expect(hook.LastEntry().Level).To(Equal(logrus.WarnLevel))
			Expect(hook.LastEntry().Data).To(HaveKeyWithValue("declaration", "ghost"))
			Expect(hook.LastEntry().Data).To(HaveKeyWithValue("strategy", "PerConsumer/NeverReleased"))
		})

		It("should warn about PerConsumer NeverReleased override", func() {
			d := inject.Declare(inject.Singleton, counter.service)

			inject.Override(c, d, func(base inject.Factory[*Service]) (*Service, error) { return base() },
				inject.WithInstantiation(inject.PerConsumer))

			Expect(hook.Entries).To(HaveLen(1))
			Expect(hook.LastEntry().Level).To(Equal(logrus.WarnLevel))
		})

		It("should warn once per slot", func() {
			d := inject.Declare(pitfall, counter.service)

			inject.SlotFor(c, d)
			inject.SlotFor(c, d)
			newConsumer(c, d).Service()

			Expect(hook.Entries).To(HaveLen(1))
		})

		It("should not warn when silenced", func() {
			c := inject.NewContainer(inject.SilenceStrategyWarnings)
			d := inject.Declare(pitfall, counter.service)

			inject.SlotFor(c, d)

			Expect(hook.Entries).To(BeEmpty())
		})

		It("should not warn about other strategies", func() {
			inject.SlotFor(c, inject.Declare(inject.Singleton, counter.service))
			inject.SlotFor(c, inject.Declare(inject.Shared, counter.service))
			inject.SlotFor(c, inject.Declare(inject.OnDemand, counter.service))

			Expect(hook.Entries).To(BeEmpty())
		})
	})

	It("should override Use consumers through Default container", func() {
		d := inject.Declare(inject.Shared, counter.service)
		fake := &Service{ID: -1}

		inject.Replace(inject.Default(), d, func() (*Service, error) { return fake, nil })
		DeferCleanup(func() { inject.Rollback(inject.Default(), d) })

		Expect(inject.Use(d).MustGet()).To(BeIdenticalTo(fake))
		Expect(counter.calls).To(Equal(0))

		inject.Rollback(inject.Default(), d)

		Expect(inject.Use(d).MustGet()).NotTo(BeIdenticalTo(fake))
	})

	It("should not override Use consumers through other containers", func() {
		d := inject.Declare(inject.Shared, counter.service)
		fake := &Service{ID: -1}

		inject.Replace(c, d, func() (*Service, error) { return fake, nil })

		Expect(inject.Use(d).MustGet()).NotTo(BeIdenticalTo(fake))
	})

	It("should use Default container for Use", func() {
		d := inject.Declare(inject.Singleton, counter.service)

		Expect(inject.Use(d).MustGet()).To(BeIdenticalTo(inject.NewInstance(inject.Default(), d).MustGet()))
		Expect(inject.Default().Len()).To(BeNumerically(">=", 1))
	})
})
