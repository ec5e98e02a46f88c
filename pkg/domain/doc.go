// Package domain contains the entities shared across layers: users, chart
// requests and the classified placements that make up a chart result. The
// types carry no infrastructure concerns.
package domain
