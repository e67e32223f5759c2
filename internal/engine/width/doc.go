// Package width provides display-width strategies for visual column
// computation.
//
// Provider is the strategy interface consumed by the cursor and node
// packages. Unity treats every character as one column wide and has no
// line index; it is the default wherever a Provider is optional. Terminal
// measures characters the way a terminal renders them (East Asian wide
// characters take two cells, combining marks take none) and indexes the
// lines of the text it was built over.
//
// TabStops computes tab-stop columns and is shared by column queries and
// tab expansion so both agree on where a tab lands.
package width
