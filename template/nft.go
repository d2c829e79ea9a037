package template

import (
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/rs/zerolog/log"
	"github.com/vybenetwork/vybebot/model"
)

var nftPortfolioTemplate = `💥 <b>NFT Portfolio</b>
👛 <b>Wallet:</b> {{ data.OwnerAddress | default:"N/A" }}
🪙 <b>Total SOL Value:</b> {{ data.TotalSol | fixed:2 }} ◎
💵 <b>Total USD Value:</b> ${{ data.TotalUsd | money }}
📚 <b>NFT Collections:</b> {{ data.TotalNftCollectionCount | integer }}
{% if data.Data %}
🧾 <b>Collections:</b>
{% for nft in data.Data %}
🎭 <b>{{ nft.Name | default:"N/A" }}</b>
🔗 Collection: {{ nft.CollectionAddress | default:"N/A" }}
📦 Items: {{ nft.TotalItems | integer }}
💰 Value: {{ nft.ValueSol | fixed:2 }} ◎ / ${{ nft.ValueUsd | money }}
🏷️ Price: {{ nft.PriceSol | fixed:2 }} ◎ / ${{ nft.PriceUsd | money }}
{% endfor %}{% else %}
⚠️ No NFT collections found.
{% endif %}`

func RanderNftPortfolio(data model.NftBalance) (string, error) {
	tpl, err := pongo2.FromString(nftPortfolioTemplate)
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	out, err := tpl.Execute(pongo2.Context{
		"data": data,
	})
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	return strings.TrimSpace(out), nil
}

var collectionOwnersTemplate = `📦 <b>Top Owners of:</b> {{ collection | shortAddr }}
{% for owner in owners %}
{{ forloop.Counter | numEmoji }}
👤 <b>Owner:</b> {{ owner.Owner | shortAddr }}
🎁 <b>NFTs:</b> {{ owner.Amount | integer }}
{% endfor %}`

// RanderCollectionOwners shows the ten largest holders of a collection.
func RanderCollectionOwners(data model.CollectionOwners, collection string) (string, error) {
	tpl, err := pongo2.FromString(collectionOwnersTemplate)
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	owners := data.Data
	if len(owners) > 10 {
		owners = owners[:10]
	}

	out, err := tpl.Execute(pongo2.Context{
		"owners":     owners,
		"collection": collection,
	})
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRander
	}

	return strings.TrimSpace(out), nil
}
