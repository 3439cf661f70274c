package reactor_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pkarell/fissim/internal/reactor"
)

const tick = 1.0 / 60

var _ = Describe("Reactor", func() {
	Context("idle with zero inputs", func() {
		It("stays cold and still", func() {
			r := reactor.New(160, 4000)
			for i := 0; i < 600; i++ {
				r.Update(tick)
			}

			Expect(r.Temperature()).To(BeZero())
			Expect(r.FissionRate()).To(BeZero())
			Expect(r.TurbineRate()).To(BeZero())
			Expect(r.Power()).To(BeZero())
		})
	})

	Context("full fission with the turbine closed", func() {
		It("heats monotonically and saturates the coolant temperature", func() {
			r := reactor.New(160, 4000)
			in, _ := r.Controls()
			in.SetFissionRate(100)

			prev := r.Temperature()
			for i := 0; i < 1200; i++ {
				r.Update(tick)
				Expect(r.Temperature()).To(BeNumerically(">=", prev))
				prev = r.Temperature()
			}

			Expect(r.Temperature()).To(Equal(10000.0))
			Expect(r.FissionRate()).To(BeNumerically(">=", 90))
			Expect(r.FissionRate()).To(BeNumerically("<", 100))
		})
	})

	Context("matched fission and turbine at half rate", func() {
		It("settles strictly inside the temperature band", func() {
			r := reactor.New(80, 4000)
			in, _ := r.Controls()
			in.SetFissionRate(50)
			in.SetTurbineRate(50)

			for i := 0; i < 3000; i++ {
				r.Update(tick)
			}

			before := r.Temperature()
			r.Update(tick)
			Expect(r.Temperature()).To(BeNumerically("~", before, 1))
			Expect(r.Temperature()).To(BeNumerically(">", 0))
			Expect(r.Temperature()).To(BeNumerically("<", 10000))
			Expect(r.Temperature()).To(BeNumerically("~", 3000, 100))
		})
	})
})
