// Text rendering for catmart CLI output.
package main

import (
	"fmt"
	"strings"

	"github.com/duskfeline/catmart/internal/market"
	"github.com/duskfeline/catmart/pkg/types"
)

func formatCat(cat *types.Cat) string {
	owner := string(cat.Owner)
	if cat.Escrowed() {
		owner = "escrow"
	}
	return fmt.Sprintf("cat %d %q rarity=%d owner=%s", cat.ID, cat.Name, cat.Rarity, owner)
}

func formatListing(l *types.Listing) string {
	return fmt.Sprintf("listing cat=%d seller=%s price=%d expires_at=%d", l.CatID, l.Seller, l.Price, l.ExpiresAt)
}

func formatSale(s *market.Sale) string {
	return fmt.Sprintf("sold cat=%d seller=%s buyer=%s price=%d", s.CatID, s.Seller, s.Buyer, s.Price)
}

func formatEvents(events []*types.Event) string {
	if len(events) == 0 {
		return "no events\n"
	}
	var b strings.Builder
	for _, ev := range events {
		switch ev.Type {
		case types.EventCatMinted:
			fmt.Fprintf(&b, "%d %s cat=%d name=%q rarity=%d owner=%s at=%d\n",
				ev.Seq, ev.Type, ev.CatID, ev.Name, ev.Rarity, ev.Owner, ev.At)
		case types.EventCatSold:
			fmt.Fprintf(&b, "%d %s cat=%d seller=%s buyer=%s price=%d at=%d\n",
				ev.Seq, ev.Type, ev.CatID, ev.Seller, ev.Buyer, ev.Price, ev.At)
		default:
			fmt.Fprintf(&b, "%d %s cat=%d at=%d\n", ev.Seq, ev.Type, ev.CatID, ev.At)
		}
	}
	return b.String()
}
