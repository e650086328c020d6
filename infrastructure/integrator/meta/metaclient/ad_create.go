package metaclient

import (
	"fmt"
	"net/url"
)

// CreateAd cria um anúncio dentro de um conjunto de anúncios a partir de um
// criativo existente. O anúncio nasce pausado; a ativação é uma mutação separada.
func (c *MetaClient) CreateAd(accountID, adsetID, name, creativeID string) ([]byte, error) {
	params := url.Values{}
	params.Add("adset_id", adsetID)
	params.Add("name", name)
	params.Add("creative", fmt.Sprintf("{\"creative_id\":\"%s\"}", creativeID))
	params.Add("status", "PAUSED")

	objectID := fmt.Sprintf("act_%s/ads", accountID)

	return c.postAdObject(objectID, params, func() ([]byte, error) {
		return c.CreateAd(accountID, adsetID, name, creativeID)
	})
}
