// Package samples builds the list of microscope sample images offered by the
// calculator's sample picker.
//
// The list always starts with the Hatch entry, a synthetic hatched pattern
// that needs no image file. Every .jpg or .jpeg file found in the sample
// directory follows, sorted with an English collator so that "cell.jpg"
// sorts between "Canine Kidney.jpg" and "Rat Thoracic Aorta.jpg".
//
// Only file names and, optionally, EXIF camera metadata are read. Pixel data
// is never decoded.
package samples
