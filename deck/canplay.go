package deck

// CanPlay reports whether card may legally be played on top. A wild variant
// is always playable. Otherwise the card must match the effective color
// (enforced if set, else top's intrinsic color), or share top's number or
// action type.
func CanPlay(card, top Card, enforced *Color) bool {
	if card.IsWild() {
		return true
	}
	if effective, ok := effectiveColor(top, enforced); ok && card.Color == effective {
		return true
	}
	if card.Type == Numbered {
		return top.Type == Numbered && card.Number == top.Number
	}
	return card.Type == top.Type
}

// effectiveColor resolves the color in play: a wild top card has no intrinsic
// color and defers to the enforced color, which may be absent.
func effectiveColor(top Card, enforced *Color) (Color, bool) {
	if top.IsWild() {
		if enforced == nil {
			return 0, false
		}
		return *enforced, true
	}
	return top.Color, true
}
