package mailer

import (
	"fmt"
	"strings"
	"time"

	"hafalanku_backend/internals/constants"
)

// Mailer: pengiriman email best-effort. Implementasi tidak boleh mem-block
// alur request; kegagalan kirim cukup dicatat di log.
type Mailer interface {
	Send(msg Message)
}

type Message struct {
	To       string
	ToName   string
	Subject  string
	HTMLBody string
}

// =====================
// Payload + template
// =====================

type AccountEmailParams struct {
	To       string
	Name     string
	Email    string
	Password string
	Role     string
}

type HafalanEmailParams struct {
	EmailOrtu      string
	OrtuName       string
	SantriName     string
	TanggalHafalan time.Time
	NamaSurah      string
	JumlahAyat     int
	AyatNomorList  []int
	Status         string
	Catatan        string
}

func NewAccountMessage(p AccountEmailParams) Message {
	html := fmt.Sprintf(`
    <p>Halo %s,</p>
    <p>Akun %s Anda sudah dibuat oleh admin. Berikut detail login:</p>
    <ul>
      <li>Email: <b>%s</b></li>
      <li>Password: <b>%s</b></li>
    </ul>
    <p>Silakan login menggunakan email dan password di atas.</p>
    <p>Peringatan: jangan pernah memberikan password ini kepada siapapun.</p>
    <p>Terima kasih.</p>`, p.Name, p.Role, p.Email, p.Password)

	return Message{
		To:       p.To,
		ToName:   p.Name,
		Subject:  fmt.Sprintf("Akun %s Anda Telah Dibuat", p.Role),
		HTMLBody: html,
	}
}

func NewHafalanMessage(p HafalanEmailParams) Message {
	tanggal := p.TanggalHafalan.In(constants.AppTimezone).Format("2 January 2006")

	nomorList := make([]string, 0, len(p.AyatNomorList))
	for _, n := range p.AyatNomorList {
		nomorList = append(nomorList, fmt.Sprintf("%d", n))
	}

	var catatanRow string
	if p.Catatan != "" {
		catatanRow = fmt.Sprintf(`<tr>
        <td style="border: 1px solid #ccc; padding: 8px;">Catatan</td>
        <td style="border: 1px solid #ccc; padding: 8px;">%s</td>
      </tr>`, p.Catatan)
	}

	html := fmt.Sprintf(`
    <p>Assalamualaikum <b>%s</b>,</p>
    <p>Kami ingin menginformasikan bahwa anak Anda, <b>%s</b>, memiliki riwayat hafalan terbaru pada <b>%s</b>.</p>
    <table style="border-collapse: collapse; width: 100%%; margin-top: 10px;">
      <tr>
        <td style="border: 1px solid #ccc; padding: 8px;">Surah</td>
        <td style="border: 1px solid #ccc; padding: 8px;">%s</td>
      </tr>
      <tr>
        <td style="border: 1px solid #ccc; padding: 8px;">Jumlah Ayat</td>
        <td style="border: 1px solid #ccc; padding: 8px;">%d</td>
      </tr>
      <tr>
        <td style="border: 1px solid #ccc; padding: 8px;">Nomor Ayat</td>
        <td style="border: 1px solid #ccc; padding: 8px;">%s</td>
      </tr>
      <tr>
        <td style="border: 1px solid #ccc; padding: 8px;">Status</td>
        <td style="border: 1px solid #ccc; padding: 8px;">%s</td>
      </tr>
      %s
    </table>
    <p>Terima kasih atas perhatian dan dukungan Anda terhadap hafalan anak.</p>
    <p>Wassalamu'alaikum warahmatullahi wabarakatuh,</p>
    <p><b>Admin Pondok Pesantren</b></p>`,
		p.OrtuName, p.SantriName, tanggal, p.NamaSurah, p.JumlahAyat,
		strings.Join(nomorList, ", "), p.Status, catatanRow)

	return Message{
		To:       p.EmailOrtu,
		ToName:   p.OrtuName,
		Subject:  fmt.Sprintf("Riwayat Hafalan Baru Dari %s", p.SantriName),
		HTMLBody: html,
	}
}

func NewResetPasswordMessage(to, token string) Message {
	html := fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
      <h2 style="color: #2c3e50;">Reset Password</h2>
      <p>Assalamu'alaikum,</p>
      <p>Kami menerima permintaan untuk mereset password akun Anda.
      Gunakan token berikut untuk melanjutkan proses reset password:</p>
      <div style="padding: 10px; background: #f4f6f8; border: 1px solid #ddd; border-radius: 5px; margin: 20px 0; font-size: 18px; font-weight: bold; color: #2c3e50;">
        %s
      </div>
      <p>Token berlaku selama 5 menit. Abaikan email ini jika Anda tidak merasa meminta reset password.</p>
      <p><b>Admin Pondok Pesantren</b></p>
    </div>`, token)

	return Message{
		To:       to,
		Subject:  "Token Reset Password",
		HTMLBody: html,
	}
}
