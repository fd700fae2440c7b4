// Package leads captures consultation requests and contact-form messages from
// site visitors and lets admins work through them.
//
// Submissions are plain inserts. After that a lead only changes status, and
// only to one of new, in_progress or closed. The consultation form's fields
// and service picker live in a singleton config row.
package leads
