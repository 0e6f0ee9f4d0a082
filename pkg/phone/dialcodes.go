package phone

// dialCodes lists the country calling codes offered by the dial-code
// selector. Sorted by numeric value for stable presentation.
var dialCodes = []string{
	"+1", "+7", "+20", "+27", "+30", "+31", "+32", "+33", "+34", "+36",
	"+39", "+40", "+41", "+43", "+44", "+45", "+46", "+47", "+48", "+49",
	"+51", "+52", "+53", "+54", "+55", "+56", "+57", "+58", "+60", "+61",
	"+62", "+63", "+64", "+65", "+66", "+81", "+82", "+84", "+86", "+90",
	"+91", "+92", "+93", "+94", "+95", "+98", "+212", "+213", "+216", "+218",
	"+220", "+221", "+233", "+234", "+254", "+255", "+256", "+260", "+263", "+264",
	"+265", "+266", "+267", "+268", "+351", "+352", "+353", "+354", "+355", "+356",
	"+357", "+358", "+359", "+370", "+371", "+372", "+380", "+381", "+385", "+386",
	"+387", "+389", "+420", "+421", "+423", "+502", "+503", "+504", "+505", "+506",
	"+507", "+509", "+591", "+593", "+595", "+598", "+852", "+853", "+855", "+856",
	"+880", "+886", "+960", "+961", "+962", "+963", "+964", "+965", "+966", "+967",
	"+968", "+971", "+972", "+973", "+974", "+975", "+976", "+977", "+992", "+993",
	"+994", "+995", "+996", "+998",
}

// DialCodes returns a copy of the supported dial code list.
func DialCodes() []string {
	out := make([]string, len(dialCodes))
	copy(out, dialCodes)
	return out
}
