package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"hafalanku_backend/internals/configs"
	santriService "hafalanku_backend/internals/features/santri/service"
	authService "hafalanku_backend/internals/features/users/auth/service"
)

// StartMaintenanceScheduler: job berkala tunggal untuk (a) hitung ulang
// peringkat santri dan (b) bersihkan reset token kadaluarsa. Interval dari
// RANK_REFRESH_MINUTES (default 5 menit), jaminannya cuma "jalan kira-kira
// tiap N menit". Error di-log, tidak pernah mematikan proses; aman jalan
// bersamaan dengan traffic normal karena lewat operasi transaksional yang
// sama dengan handler.
func StartMaintenanceScheduler(db *gorm.DB) {
	interval := time.Duration(configs.GetEnvInt("RANK_REFRESH_MINUTES", 5)) * time.Minute

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log.Printf("[SCHEDULER] Maintenance scheduler aktif, interval %s", interval)

		for range ticker.C {
			runOnce(db)
		}
	}()
}

func runOnce(db *gorm.DB) {
	if err := santriService.UpdatePeringkat(db); err != nil {
		log.Printf("[SCHEDULER ERROR] update peringkat: %v", err)
	} else {
		log.Println("[SCHEDULER] Peringkat santri diperbarui")
	}

	count, err := authService.PurgeExpiredResetTokens(db)
	if err != nil {
		log.Printf("[SCHEDULER ERROR] purge reset token: %v", err)
	} else if count > 0 {
		log.Printf("[SCHEDULER] %d reset token kadaluarsa dihapus", count)
	}
}
