package service

// activationCodes is the fixed set of pre-shared pro-tier activation codes.
// Each code can be redeemed exactly once system-wide; redemptions are
// tracked in the activation_codes collection.
var activationCodes = map[string]struct{}{
	"A7D9K3P1Q8Z2": {}, "B4F6L8R0S3N7": {}, "C2M5T9V1X4Y8": {}, "D9Q1Z6H3W7K2": {},
	"E3N7A4J8P0L5": {}, "F8R2S6B1V9M4": {}, "G1K9P5X2T7C8": {}, "H6L3Z8Q0N5Y1": {},
	"J2V7M4R9S1K6": {}, "K5P8T2A9D3F1": {}, "L9X1C6V4B7N2": {}, "M3S7Q0H4J8P6": {},
	"N4Y2K9Z5R1T7": {}, "P7B1M8L3S4Q9": {}, "Q0D6F2V9X3K5": {}, "R8N5A1P7Z4M2": {},
	"S2K4T9B6V1Q7": {}, "T6P3R8X0L5N1": {}, "V1Z9M4S2K7Q6": {}, "W3A8D5P1R9L2": {},
	"X9C2V6B4T1K7": {}, "Y5Q1N7M3S8P2": {}, "Z2K7P9X4D1V6": {}, "0A9B8C7D6E5F": {},
	"1G4H7J2K9L0M": {}, "GOW47EOS6JSY": {}, "AJ0WJ7JW9QHS": {}, "KW40QBS87HDG": {},
	"HWUW92167QWO": {}, "FSKOQTDBDOEI": {}, "ATEHDPDGDTWY": {}, "GSHSHOIISTST": {},
	"SGSJSOSHWGDY": {}, "RREWUIOSPKXB": {}, "SFKLMNDAWIQY": {}, "GSPWTNDLXXYK": {},
	"2UWHDHLA9YDG": {}, "GDJWO0HSHSGZK": {}, "GSIWTSJSUQRD": {}, "YSRQRRRTUIOP": {},
	"ATDOTEGDGHJK": {}, "AHSYEDVNXOYEH": {}, "SGWTPDH19GSO": {}, "DAR2GSOWT921": {},
}

// ValidActivationCode reports whether code belongs to the pre-shared set.
func ValidActivationCode(code string) bool {
	_, ok := activationCodes[code]
	return ok
}
