// Package resize computes target video extents. A Size describes an extent
// by its larger (major) and smaller (minor) axis so policies never care
// whether a source is portrait or landscape; ExactSize additionally keeps
// the original width/height labels so orientation can be recovered at the
// end. Resizer policies are pure Size -> Size functions and MultiResizer
// folds an input through an ordered chain of them.
package resize
