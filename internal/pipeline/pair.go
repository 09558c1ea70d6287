package pipeline

import "xrplScope/internal/model"

// PairID builds the pair key for two legs: legIn's asset id, "_", legOut's
// asset id. The key is directional — legs are not reordered, so the same
// economic pair trading the other way yields the mirrored id. Consumers join
// on the ids this feed emits, so the direction is preserved.
func PairID(legIn, legOut model.AssetAmount) string {
	return legIn.AssetID() + "_" + legOut.AssetID()
}
