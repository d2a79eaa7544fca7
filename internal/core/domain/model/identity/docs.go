// Package identity models the callers of the API: users, the groups that grant
// them roles, and the opaque API tokens they authenticate with.
//
// Roles are derived, never stored on their own:
//   - staff: the is_staff flag (admin in the original terminology)
//   - manager: membership in the "Managers" group
//   - delivery crew: membership in the "Delivery Crew" group
//   - customer: any authenticated user
package identity
