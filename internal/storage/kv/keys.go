package kv

// Well-known keys of the persisted state layout. The session record and the
// registered-users table are global; asset, event and investor-profile
// records are partitioned per user id.
const (
	KeySession = "datarium_session"
	KeyUsers   = "datarium_users"
)

// AssetsKey returns the per-user partition key of the held-asset list.
func AssetsKey(userID string) string {
	return "portfolio_assets_user_" + userID
}

// EventsKey returns the per-user partition key of the append-only event log.
func EventsKey(userID string) string {
	return "portfolio_events_user_" + userID
}

// ProfileKey returns the per-user partition key of the investor-profile
// questionnaire answers.
func ProfileKey(userID string) string {
	return "investor_profile_user_" + userID
}
