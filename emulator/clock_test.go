package emulator_test

import (
	"bytes"
	"context"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/ls8/emulator"
)

var _ = Describe("Clock", func() {
	var emu *emulator.Emulator

	BeforeEach(func() {
		emu = emulator.NewEmulator()
		emu.Console.Output = &bytes.Buffer{}

		prog, err := emu.NewAssembler().Parse(strings.NewReader(strings.Join([]string{
			"Loop:   LDI R0,Loop",
			"        JMP R0",
		}, "\n")))
		Expect(err).NotTo(HaveOccurred())

		emu.Program = prog
		Expect(emu.Reset()).To(Succeed())
	})

	Describe("FreeRun", func() {
		It("should not tick once cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			err := emu.Run(ctx, emulator.FreeRun{})
			Expect(err).To(MatchError(context.Canceled))
			Expect(emu.Ticks).To(Equal(0))
		})

		It("should stop at the deadline", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
			defer cancel()

			err := emu.Run(ctx, emulator.FreeRun{})
			Expect(err).To(MatchError(context.DeadlineExceeded))
			Expect(emu.Halted).To(BeFalse())
		})
	})

	Describe("Ticker", func() {
		It("should pace ticks", func() {
			clock := emulator.NewTicker(1000)
			defer clock.Stop()

			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()

			err := emu.Run(ctx, clock)
			Expect(err).To(MatchError(context.DeadlineExceeded))
			Expect(emu.Ticks).To(BeNumerically("<", 1000))
		})

		It("should wait for the context", func() {
			clock := emulator.NewTicker(1)
			defer clock.Stop()

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			Expect(clock.Wait(ctx)).To(MatchError(context.Canceled))
		})

		It("should accept rates above 1GHz", func() {
			Expect(func() {
				clock := emulator.NewTicker(2_000_000_000)
				defer clock.Stop()

				Expect(clock.Wait(context.Background())).To(Succeed())
			}).NotTo(Panic())
		})

		It("should accept a zero rate", func() {
			Expect(func() {
				emulator.NewTicker(0).Stop()
			}).NotTo(Panic())
		})
	})
})
