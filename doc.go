// The [pubhub] package is the Go client for the PubHub publication
// platform.
//
// # Stores
//
// All state lives in a handful of stores constructed once by [NewClient]
// and passed around by reference: [AuthSession] owns the authentication
// lifecycle, [UserStore] and [PublicationStore] cache server-owned
// entities, [ViewStore] and [ThemeStore] hold the two durably persisted
// UI preferences.
//
// The entity stores follow a refresh-after-write policy: a successful
// create, update or delete triggers a full refetch instead of patching
// the cache locally, so the cache is never authoritative and never
// diverges from the server for longer than one round trip.
//
// # Transport
//
// Every call goes through [github.com/pubhub/pubhub.go/pkg/gateway],
// which issues one cookie-credentialed JSON request per operation and
// classifies the response into a success payload or a
// [gateway.APIError] before the stores see it.
//
// # Derivations
//
// Search, filtering and sorting are pure functions over a cache
// snapshot ([FilterPublications], [FilterUsersArray],
// [SearchPublications]); they never mutate store state and take the
// clock as an argument where time matters.
//
// # Concurrency
//
// Overlapping calls against the same store are not serialized: whichever
// response arrives last wins, and the Loading flag is a visibility hint,
// not a lock. This mirrors the platform's reference client.
package pubhub
