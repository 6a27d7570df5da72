package platform

import "fmt"

// Unimplemented satisfies Platform by panicking on every call. Wiring a
// live remote-process backend is explicitly out of scope (see spec §1);
// this stub exists so internal/cli can construct a concrete Platform and
// hand off to the governor without depending on the fake meant for tests.
type Unimplemented struct{}

func (Unimplemented) unimplemented(op string) {
	panic(fmt.Sprintf("platform: %s has no backend wired — this binary ships no live remote-process implementation", op))
}

func (u Unimplemented) Scan(string) []string {
	u.unimplemented("Scan")
	return nil
}

func (u Unimplemented) GetServer(string) ServerInfo {
	u.unimplemented("GetServer")
	return ServerInfo{}
}

func (u Unimplemented) GetServerMoneyAvailable(string) uint64 {
	u.unimplemented("GetServerMoneyAvailable")
	return 0
}

func (u Unimplemented) GetServerMaxRAM(string) float64 {
	u.unimplemented("GetServerMaxRAM")
	return 0
}

func (u Unimplemented) GetServerUsedRAM(string) float64 {
	u.unimplemented("GetServerUsedRAM")
	return 0
}

func (u Unimplemented) GetServerSecurityLevel(string) float64 {
	u.unimplemented("GetServerSecurityLevel")
	return 0
}

func (u Unimplemented) GetHackTime(string) float64 {
	u.unimplemented("GetHackTime")
	return 0
}

func (u Unimplemented) HackAnalyze(string) float64 {
	u.unimplemented("HackAnalyze")
	return 0
}

func (u Unimplemented) HackAnalyzeChance(string) float64 {
	u.unimplemented("HackAnalyzeChance")
	return 0
}

func (u Unimplemented) GrowthAnalyze(string, float64, int) float64 {
	u.unimplemented("GrowthAnalyze")
	return 0
}

func (u Unimplemented) BruteSSH(string) bool {
	u.unimplemented("BruteSSH")
	return false
}

func (u Unimplemented) FTPCrack(string) bool {
	u.unimplemented("FTPCrack")
	return false
}

func (u Unimplemented) RelaySMTP(string) bool {
	u.unimplemented("RelaySMTP")
	return false
}

func (u Unimplemented) HTTPWorm(string) bool {
	u.unimplemented("HTTPWorm")
	return false
}

func (u Unimplemented) SQLInject(string) bool {
	u.unimplemented("SQLInject")
	return false
}

func (u Unimplemented) Nuke(string) bool {
	u.unimplemented("Nuke")
	return false
}

func (u Unimplemented) Exec(string, string, int, []string) int {
	u.unimplemented("Exec")
	return 0
}

func (u Unimplemented) Kill(int) bool {
	u.unimplemented("Kill")
	return false
}

func (u Unimplemented) IsRunning(int) bool {
	u.unimplemented("IsRunning")
	return false
}

func (u Unimplemented) Scp(string, string, string) bool {
	u.unimplemented("Scp")
	return false
}

func (u Unimplemented) Write(string, string, string) {
	u.unimplemented("Write")
}

func (u Unimplemented) Sleep(int64) {
	u.unimplemented("Sleep")
}

func (u Unimplemented) GetPlayerHackingLevel() int {
	u.unimplemented("GetPlayerHackingLevel")
	return 0
}

func (u Unimplemented) Now() float64 {
	u.unimplemented("Now")
	return 0
}

var _ Platform = Unimplemented{}
