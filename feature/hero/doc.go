// Package hero serves the landing-page hero: a singleton copy block and a
// list of dashboard cards.
//
// Dashboards are replaced wholesale and positioned by payload order. The copy
// block lives under a fixed id and every omitted field takes its value from
// ContentDefaults.
package hero
