package hostmodel_test

import (
	"testing"

	"github.com/rohmanhakim/autohackgovernor/internal/hostmodel"
	"github.com/rohmanhakim/autohackgovernor/internal/platform"
	"github.com/stretchr/testify/assert"
)

func newTestPlatform() *platform.FakePlatform {
	p := platform.NewFakePlatform()
	p.MaxRAMGB["n00dles"] = 8
	p.UsedRAMGB["n00dles"] = 2
	p.Money["n00dles"] = 1000
	p.Security["n00dles"] = 15
	p.HackTimeMs["n00dles"] = 5000
	p.Servers["n00dles"] = platform.ServerInfo{MaxMoney: 10000, MinDifficulty: 1}
	return p
}

func TestHostRAMAccessors(t *testing.T) {
	p := newTestPlatform()
	h := hostmodel.NewHost("n00dles", "1.2.3.4", "org", 1, []string{"home"}, false, 1)

	assert.Equal(t, float64(8), h.CapacityRAM(p).GB())
	assert.Equal(t, float64(2), h.UsedRAM(p).GB())
	assert.Equal(t, float64(6), h.FreeRAM(p).GB())
}

func TestHostUsableFreeRAMAppliesReservationRate(t *testing.T) {
	p := newTestPlatform()
	h := hostmodel.NewHost("n00dles", "", "", 0, nil, false, 0)

	// 0.9 * 800 - 200 = 520 hundredths = 5.2GB
	usable := h.UsableFreeRAM(p, 0.9)
	assert.Equal(t, float64(5.2), usable.GB())
}

func TestHostUsableFreeRAMClampsToZero(t *testing.T) {
	p := newTestPlatform()
	p.UsedRAMGB["n00dles"] = 100
	h := hostmodel.NewHost("n00dles", "", "", 0, nil, false, 0)

	assert.Equal(t, float64(0), h.UsableFreeRAM(p, 0.9).GB())
}

func TestHostTimingDerivations(t *testing.T) {
	p := newTestPlatform()
	h := hostmodel.NewHost("n00dles", "", "", 0, nil, false, 0)

	assert.Equal(t, float64(5000), h.HackTime(p))
	assert.Equal(t, float64(16000), h.GrowTime(p))
	assert.Equal(t, float64(20000), h.WeakenTime(p))
}

func TestHostMoneyAndSecurity(t *testing.T) {
	p := newTestPlatform()
	h := hostmodel.NewHost("n00dles", "", "", 0, nil, false, 0)

	assert.Equal(t, uint64(1000), h.MoneyAvailable(p))
	assert.Equal(t, uint64(10000), h.MaxMoney(p))
	assert.Equal(t, 15000, int(h.SecurityLevel(p)))
	assert.Equal(t, 1000, int(h.MinSecurityLevel(p)))
}

func TestHostTraversalIsCopied(t *testing.T) {
	traversal := []string{"home", "n00dles"}
	h := hostmodel.NewHost("n00dles", "", "", 0, traversal, false, 0)
	got := h.Traversal()
	got[0] = "mutated"
	assert.Equal(t, "home", h.Traversal()[0])
}
