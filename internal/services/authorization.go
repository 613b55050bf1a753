package services

// CanMutate decides whether the authenticated user may edit or delete a
// resource owned by ownerID. The zero user id is the absent sentinel and
// never owns anything.
func CanMutate(userID, ownerID int64) bool {
	return userID != 0 && userID == ownerID
}
