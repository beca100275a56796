package service

import (
	"net/url"

	"smartqr-ordering/ordering-svc/internal/domain"
)

const cartKeyPrefix = "sqrcart:"

// CartKey names the persisted cart for a restaurant and table. Tokens and
// table numbers live under different markers and every component is escaped,
// so no slug, token or number can produce another table's key.
func CartKey(slug string, identity domain.TableIdentity) string {
	base := cartKeyPrefix + url.QueryEscape(slug) + ":"
	switch {
	case identity.Token != "":
		return base + "t:" + url.QueryEscape(identity.Token)
	case identity.Number != "":
		return base + "tn:" + url.QueryEscape(identity.Number)
	default:
		return base + "tn:?"
	}
}
