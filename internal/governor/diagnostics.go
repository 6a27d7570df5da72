package governor

import (
	"github.com/rohmanhakim/autohackgovernor/internal/diagnostics"
)

// refreshDiagnostics rewrites the per-tick target table — spec §4.5, the
// only user-observable feedback the governor produces.
func (g *AutoHackGovernor) refreshDiagnostics() {
	if g.sink == nil {
		return
	}

	rows := make([]diagnostics.Row, 0, len(g.targetsByScore))
	for i := len(g.targetsByScore) - 1; i >= 0; i-- {
		bundle, ok := g.targetsByName[g.targetsByScore[i]]
		if !ok {
			continue
		}
		host := bundle.Host
		money := host.MoneyAvailable(g.plat)
		maxMoney := host.MaxMoney(g.plat)
		moneyPercent := 0.0
		if maxMoney > 0 {
			moneyPercent = float64(money) / float64(maxMoney)
		}
		securityDelta := host.SecurityLevel(g.plat).Float() - host.MinSecurityLevel(g.plat).Float()

		rows = append(rows, diagnostics.Row{
			Hostname:         host.Hostname(),
			State:            bundle.State.Phase.String(),
			WaitingForMemory: bundle.WaitingForMemory,
			LastPollTime:     bundle.LastPollTime,
			MoneyPercent:     moneyPercent,
			SecurityDelta:    securityDelta,
		})
	}
	g.sink.WriteTable(rows)
}
