// Package platform declares the capability set the governor must receive
// from the outside world. No network-facing implementation ships in this
// repository — wiring Platform to a live remote-process API is explicitly
// out of scope (see spec §1) — but every method is exercised by the
// in-memory FakePlatform used throughout the test suite.
package platform

// ServerInfo mirrors the platform's get_server(host) record.
type ServerInfo struct {
	HasAdminRights       bool
	BackdoorInstalled    bool
	MaxMoney             uint64
	PurchasedByPlayer    bool
	RequiredHackingSkill int
	MinDifficulty        float64
	CPUCores             int
	IP                   string
	NumOpenPortsRequired int
	OrganizationName     string
}

// Platform is every external operation the governor's core logic depends
// on. Root-acquisition primitives and Nuke are fallible booleans; Exec
// returns 0 on failure to spawn (no pid).
type Platform interface {
	Scan(host string) []string

	GetServer(host string) ServerInfo
	GetServerMoneyAvailable(host string) uint64
	GetServerMaxRAM(host string) float64
	GetServerUsedRAM(host string) float64
	GetServerSecurityLevel(host string) float64

	GetHackTime(host string) float64
	HackAnalyze(host string) float64
	HackAnalyzeChance(host string) float64
	GrowthAnalyze(host string, factor float64, cores int) float64

	BruteSSH(host string) bool
	FTPCrack(host string) bool
	RelaySMTP(host string) bool
	HTTPWorm(host string) bool
	SQLInject(host string) bool
	Nuke(host string) bool

	Exec(script string, host string, threads int, args []string) int
	Kill(pid int) bool
	IsRunning(pid int) bool

	Scp(file string, dst string, src string) bool
	Write(file string, data string, mode string)

	Sleep(ms int64)
	GetPlayerHackingLevel() int
	Now() float64
}
