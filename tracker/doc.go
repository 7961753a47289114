// Package tracker is the HTTP client for the 3S data-export API.
//
// The upstream contract is undocumented and inconsistent: login has to guess
// among several payload shapes, the token field in the response has several
// spellings, and errors can arrive embedded in an otherwise successful
// response body. This package keeps all of that guessing in one place so the
// rest of the program sees plain record lists.
package tracker
