// Package tier maps a simulated clock minute onto a static price table.
//
// A Table is an ordered list of (MaxMinutes, Price) breakpoints that
// partitions the minute axis into contiguous tiers:
//
//	[0, t[0].MaxMinutes)            -> t[0].Price
//	[t[0].MaxMinutes, t[1].MaxMinutes) -> t[1].Price
//	...
//
// Minutes at or beyond the last bound saturate to the last tier rather than
// failing. All functions in this package are pure; a Table is validated once
// at configuration time with Validate and is then read-only.
package tier
