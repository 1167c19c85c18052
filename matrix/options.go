// SPDX-License-Identifier: MIT
package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on Set.
// Dense matrices reject NaN/±Inf writes by default; the travel-time and
// TSP distance matrices built throughout this planner never need to carry
// non-finite values, so the stricter default is kept rather than relaxed.
const DefaultValidateNaNInf = true
