package template

import (
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/rs/zerolog/log"
	"github.com/vybenetwork/vybebot/model"
)

var programDetailsTemplate = `📌 <b>Program Overview</b>

🏛️ <b>Entity:</b> {{ data.EntityName | default:"N/A" }}
📛 <b>Name:</b> {{ data.FriendlyName | default:"N/A" }}
🏷️ <b>Labels:</b> {{ labels }}

📊 <b>Stats (24h)</b>
👥 Active Users: {{ data.Dau | comma }}
🆕 New Users: {{ data.NewUsersChange1d | comma }}
🔁 Transactions: {{ data.Transactions1d | comma }}

📖 <b>Description:</b>
{{ data.ProgramDescription | default:"N/A" }}`

func RanderProgramDetails(data model.ProgramDetails) (string, error) {
	tpl, err := pongo2.FromString(programDetailsTemplate)
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	labels := "None"
	if len(data.Labels) > 0 {
		labels = strings.Join(data.Labels, ", ")
	}

	out, err := tpl.Execute(pongo2.Context{
		"data":   data,
		"labels": labels,
	})
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	return out, nil
}

var topWalletsTemplate = `📊 <b>Top {{ limit }} Active Wallets</b>
🧾 <b>Program:</b> {{ programName }}
📆 <b>Last {{ days }} Days</b>
{% for user in wallets %}{{ forloop.Counter | numEmoji }} {{ user.Wallet | shortAddr }}: 🔁 <b>{{ user.Transactions | comma }}</b>
{% endfor %}`

func RanderTopWallets(data model.ActiveUsers, programName string, days, limit int) (string, error) {
	tpl, err := pongo2.FromString(topWalletsTemplate)
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	out, err := tpl.Execute(pongo2.Context{
		"wallets":     data.Data,
		"programName": programName,
		"days":        days,
		"limit":       limit,
	})
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	return strings.TrimSpace(out), nil
}
