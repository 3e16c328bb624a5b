package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rule30life/internal/automaton"
	"github.com/san-kum/rule30life/internal/sim"
)

var _ = Describe("Simulation", func() {
	var s *sim.Simulation

	BeforeEach(func() {
		var err error
		s, err = sim.New(31, 21)
		Expect(err).NotTo(HaveOccurred())
	})

	It("drops the last row of an odd height", func() {
		Expect(s.HalfHeight()).To(Equal(10))
		snap := s.Snapshot()
		Expect(snap.Height()).To(Equal(20))
	})

	It("keeps every row at full width over many ticks", func() {
		for i := 0; i < 200; i++ {
			Expect(s.Step()).To(Succeed())
		}
		snap := s.Snapshot()
		Expect(snap.NewestLine()).To(HaveLen(31))
		Expect(snap.Lines).To(HaveLen(31 * 10))
		Expect(snap.Life).To(HaveLen(31 * 10))
		Expect(snap.Tick).To(BeEquivalentTo(200))
	})

	It("is deterministic across independent runs", func() {
		other, err := sim.New(31, 21)
		Expect(err).NotTo(HaveOccurred())
		for i := 0; i < 50; i++ {
			Expect(s.Step()).To(Succeed())
			Expect(other.Step()).To(Succeed())
		}
		Expect(s.Snapshot()).To(Equal(other.Snapshot()))
	})

	It("slides the Rule 30 window by one row per tick", func() {
		before := s.Snapshot()
		Expect(s.Step()).To(Succeed())
		after := s.Snapshot()

		w := before.Width
		Expect(after.Lines[:len(after.Lines)-w]).To(Equal(before.Lines[w:]))
		Expect(after.NewestLine()).To(Equal(automaton.NextRow(before.NewestLine())))
	})

	It("only ever holds binary cells", func() {
		for i := 0; i < 100; i++ {
			Expect(s.Step()).To(Succeed())
		}
		snap := s.Snapshot()
		for _, c := range append(snap.Lines, snap.Life...) {
			Expect(c).To(Or(Equal(automaton.Dead), Equal(automaton.Alive)))
		}
	})
})
