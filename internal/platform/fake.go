package platform

import "sort"

// FakePlatform is an in-memory Platform double driven by a virtual clock:
// Sleep(ms) advances the clock: Now() never advances on its own. It is
// shared across internal/hacker, internal/target, and internal/governor's
// test suites so each of those packages can drive the same deterministic
// world instead of re-deriving bespoke stubs per package.
type FakePlatform struct {
	Neighbors map[string][]string
	Servers   map[string]ServerInfo
	Money     map[string]uint64
	MaxRAMGB  map[string]float64
	UsedRAMGB map[string]float64
	Security  map[string]float64

	HackTimeMs        map[string]float64
	HackAnalyzeFrac   map[string]float64
	HackAnalyzeChance map[string]float64
	// GrowthAnalyzeFn, if set, overrides the default stub (one thread per
	// doubling of money, i.e. ceil(log2(factor))).
	GrowthAnalyzeFn func(host string, factor float64, cores int) float64

	BruteSSHOK   map[string]bool
	FTPCrackOK   map[string]bool
	RelaySMTPOK  map[string]bool
	HTTPWormOK   map[string]bool
	SQLInjectOK  map[string]bool
	NukeOK       map[string]bool
	ScpOK        bool
	HackingLevel int
	// ExecShouldFail, if set, lets a test force a specific exec call to
	// return 0 (no pid) to exercise spawn-failure rollback paths.
	ExecShouldFail func(script string, host string, threads int) bool

	nextPID int
	running map[int]bool
	clock   float64
}

func NewFakePlatform() *FakePlatform {
	return &FakePlatform{
		Neighbors:         map[string][]string{},
		Servers:           map[string]ServerInfo{},
		Money:             map[string]uint64{},
		MaxRAMGB:          map[string]float64{},
		UsedRAMGB:         map[string]float64{},
		Security:          map[string]float64{},
		HackTimeMs:        map[string]float64{},
		HackAnalyzeFrac:   map[string]float64{},
		HackAnalyzeChance: map[string]float64{},
		BruteSSHOK:        map[string]bool{},
		FTPCrackOK:        map[string]bool{},
		RelaySMTPOK:       map[string]bool{},
		HTTPWormOK:        map[string]bool{},
		SQLInjectOK:       map[string]bool{},
		NukeOK:            map[string]bool{},
		ScpOK:             true,
		running:           map[int]bool{},
	}
}

func (f *FakePlatform) Scan(host string) []string {
	out := append([]string(nil), f.Neighbors[host]...)
	sort.Strings(out)
	return out
}

func (f *FakePlatform) GetServer(host string) ServerInfo { return f.Servers[host] }

func (f *FakePlatform) GetServerMoneyAvailable(host string) uint64 { return f.Money[host] }
func (f *FakePlatform) GetServerMaxRAM(host string) float64        { return f.MaxRAMGB[host] }
func (f *FakePlatform) GetServerUsedRAM(host string) float64       { return f.UsedRAMGB[host] }
func (f *FakePlatform) GetServerSecurityLevel(host string) float64 { return f.Security[host] }

func (f *FakePlatform) GetHackTime(host string) float64         { return f.HackTimeMs[host] }
func (f *FakePlatform) HackAnalyze(host string) float64         { return f.HackAnalyzeFrac[host] }
func (f *FakePlatform) HackAnalyzeChance(host string) float64    { return f.HackAnalyzeChance[host] }

func (f *FakePlatform) GrowthAnalyze(host string, factor float64, cores int) float64 {
	if f.GrowthAnalyzeFn != nil {
		return f.GrowthAnalyzeFn(host, factor, cores)
	}
	if factor <= 1 {
		return 0
	}
	// default stub: one thread doubles money, rounding up log2(factor)
	threads := 0.0
	remaining := factor
	for remaining > 1 {
		remaining /= 2
		threads++
	}
	return threads
}

func (f *FakePlatform) BruteSSH(host string) bool  { return f.BruteSSHOK[host] }
func (f *FakePlatform) FTPCrack(host string) bool  { return f.FTPCrackOK[host] }
func (f *FakePlatform) RelaySMTP(host string) bool { return f.RelaySMTPOK[host] }
func (f *FakePlatform) HTTPWorm(host string) bool  { return f.HTTPWormOK[host] }
func (f *FakePlatform) SQLInject(host string) bool { return f.SQLInjectOK[host] }
func (f *FakePlatform) Nuke(host string) bool      { return f.NukeOK[host] }

// Exec allocates a fresh pid and marks it running. If ExecShouldFail is set
// and returns true for this call, Exec returns 0 (no pid) instead. Exec
// does not check or consume the host's RAM.
func (f *FakePlatform) Exec(script string, host string, threads int, args []string) int {
	if f.ExecShouldFail != nil && f.ExecShouldFail(script, host, threads) {
		return 0
	}
	f.nextPID++
	pid := f.nextPID
	f.running[pid] = true
	return pid
}

func (f *FakePlatform) Kill(pid int) bool {
	if !f.running[pid] {
		return false
	}
	delete(f.running, pid)
	return true
}

func (f *FakePlatform) IsRunning(pid int) bool { return f.running[pid] }

func (f *FakePlatform) Scp(file string, dst string, src string) bool { return f.ScpOK }
func (f *FakePlatform) Write(file string, data string, mode string)  {}

func (f *FakePlatform) Sleep(ms int64) { f.clock += float64(ms) }
func (f *FakePlatform) Now() float64   { return f.clock }

func (f *FakePlatform) GetPlayerHackingLevel() int { return f.HackingLevel }
