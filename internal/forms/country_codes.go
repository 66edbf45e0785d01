package forms

// CountryCodes is the calling-code list offered by the phone field, in display order.
var CountryCodes = []CountryCode{
	{Code: "+1", Country: "United States/Canada"},
	{Code: "+7", Country: "Russia/Kazakhstan"},
	{Code: "+20", Country: "Egypt"},
	{Code: "+27", Country: "South Africa"},
	{Code: "+30", Country: "Greece"},
	{Code: "+31", Country: "Netherlands"},
	{Code: "+32", Country: "Belgium"},
	{Code: "+33", Country: "France"},
	{Code: "+34", Country: "Spain"},
	{Code: "+36", Country: "Hungary"},
	{Code: "+39", Country: "Italy"},
	{Code: "+40", Country: "Romania"},
	{Code: "+41", Country: "Switzerland"},
	{Code: "+43", Country: "Austria"},
	{Code: "+44", Country: "United Kingdom"},
	{Code: "+45", Country: "Denmark"},
	{Code: "+46", Country: "Sweden"},
	{Code: "+47", Country: "Norway"},
	{Code: "+48", Country: "Poland"},
	{Code: "+49", Country: "Germany"},
	{Code: "+51", Country: "Peru"},
	{Code: "+52", Country: "Mexico"},
	{Code: "+53", Country: "Cuba"},
	{Code: "+54", Country: "Argentina"},
	{Code: "+55", Country: "Brazil"},
	{Code: "+56", Country: "Chile"},
	{Code: "+57", Country: "Colombia"},
	{Code: "+58", Country: "Venezuela"},
	{Code: "+60", Country: "Malaysia"},
	{Code: "+61", Country: "Australia"},
	{Code: "+62", Country: "Indonesia"},
	{Code: "+63", Country: "Philippines"},
	{Code: "+64", Country: "New Zealand"},
	{Code: "+65", Country: "Singapore"},
	{Code: "+66", Country: "Thailand"},
	{Code: "+81", Country: "Japan"},
	{Code: "+82", Country: "Korea (South)"},
	{Code: "+84", Country: "Vietnam"},
	{Code: "+86", Country: "China"},
	{Code: "+90", Country: "Turkey"},
	{Code: "+91", Country: "India"},
	{Code: "+92", Country: "Pakistan"},
	{Code: "+93", Country: "Afghanistan"},
	{Code: "+94", Country: "Sri Lanka"},
	{Code: "+95", Country: "Myanmar"},
	{Code: "+98", Country: "Iran"},
	{Code: "+211", Country: "South Sudan"},
	{Code: "+212", Country: "Morocco"},
	{Code: "+213", Country: "Algeria"},
	{Code: "+216", Country: "Tunisia"},
	{Code: "+218", Country: "Libya"},
	{Code: "+220", Country: "Gambia"},
	{Code: "+221", Country: "Senegal"},
	{Code: "+222", Country: "Mauritania"},
	{Code: "+223", Country: "Mali"},
	{Code: "+224", Country: "Guinea"},
	{Code: "+225", Country: "Cote d'Ivoire"},
	{Code: "+226", Country: "Burkina Faso"},
	{Code: "+227", Country: "Niger"},
	{Code: "+228", Country: "Togo"},
	{Code: "+229", Country: "Benin"},
	{Code: "+230", Country: "Mauritius"},
	{Code: "+231", Country: "Liberia"},
	{Code: "+232", Country: "Sierra Leone"},
	{Code: "+233", Country: "Ghana"},
	{Code: "+234", Country: "Nigeria"},
	{Code: "+235", Country: "Chad"},
	{Code: "+236", Country: "Central African Republic"},
	{Code: "+237", Country: "Cameroon"},
	{Code: "+238", Country: "Cape Verde"},
	{Code: "+239", Country: "Sao Tome & Principe"},
	{Code: "+240", Country: "Equatorial Guinea"},
	{Code: "+241", Country: "Gabon"},
	{Code: "+242", Country: "Republic of the Congo"},
	{Code: "+243", Country: "DR Congo"},
	{Code: "+244", Country: "Angola"},
	{Code: "+245", Country: "Guinea-Bissau"},
	{Code: "+246", Country: "British Indian Ocean Territory"},
	{Code: "+248", Country: "Seychelles"},
	{Code: "+249", Country: "Sudan"},
	{Code: "+250", Country: "Rwanda"},
	{Code: "+251", Country: "Ethiopia"},
	{Code: "+252", Country: "Somalia"},
	{Code: "+253", Country: "Djibouti"},
	{Code: "+254", Country: "Kenya"},
	{Code: "+255", Country: "Tanzania"},
	{Code: "+256", Country: "Uganda"},
	{Code: "+257", Country: "Burundi"},
	{Code: "+258", Country: "Mozambique"},
	{Code: "+260", Country: "Zambia"},
	{Code: "+261", Country: "Madagascar"},
	{Code: "+262", Country: "Reunion/Mayotte"},
	{Code: "+263", Country: "Zimbabwe"},
	{Code: "+264", Country: "Namibia"},
	{Code: "+265", Country: "Malawi"},
	{Code: "+266", Country: "Lesotho"},
	{Code: "+267", Country: "Botswana"},
	{Code: "+268", Country: "Eswatini"},
	{Code: "+269", Country: "Comoros"},
	{Code: "+290", Country: "Saint Helena"},
	{Code: "+291", Country: "Eritrea"},
	{Code: "+297", Country: "Aruba"},
	{Code: "+298", Country: "Faroe Islands"},
	{Code: "+299", Country: "Greenland"},
	{Code: "+350", Country: "Gibraltar"},
	{Code: "+351", Country: "Portugal"},
	{Code: "+352", Country: "Luxembourg"},
	{Code: "+353", Country: "Ireland"},
	{Code: "+354", Country: "Iceland"},
	{Code: "+355", Country: "Albania"},
	{Code: "+356", Country: "Malta"},
	{Code: "+357", Country: "Cyprus"},
	{Code: "+358", Country: "Finland"},
	{Code: "+359", Country: "Bulgaria"},
	{Code: "+370", Country: "Lithuania"},
	{Code: "+371", Country: "Latvia"},
	{Code: "+372", Country: "Estonia"},
	{Code: "+373", Country: "Moldova"},
	{Code: "+374", Country: "Armenia"},
	{Code: "+375", Country: "Belarus"},
	{Code: "+376", Country: "Andorra"},
	{Code: "+377", Country: "Monaco"},
	{Code: "+378", Country: "San Marino"},
	{Code: "+379", Country: "Vatican City"},
	{Code: "+380", Country: "Ukraine"},
	{Code: "+381", Country: "Serbia"},
	{Code: "+382", Country: "Montenegro"},
	{Code: "+383", Country: "Kosovo"},
	{Code: "+385", Country: "Croatia"},
	{Code: "+386", Country: "Slovenia"},
	{Code: "+387", Country: "Bosnia & Herzegovina"},
	{Code: "+389", Country: "North Macedonia"},
	{Code: "+420", Country: "Czech Republic"},
	{Code: "+421", Country: "Slovakia"},
	{Code: "+423", Country: "Liechtenstein"},
	{Code: "+500", Country: "Falkland Islands"},
	{Code: "+501", Country: "Belize"},
	{Code: "+502", Country: "Guatemala"},
	{Code: "+503", Country: "El Salvador"},
	{Code: "+504", Country: "Honduras"},
	{Code: "+505", Country: "Nicaragua"},
	{Code: "+506", Country: "Costa Rica"},
	{Code: "+507", Country: "Panama"},
	{Code: "+508", Country: "Saint Pierre & Miquelon"},
	{Code: "+509", Country: "Haiti"},
	{Code: "+590", Country: "Guadeloupe"},
	{Code: "+591", Country: "Bolivia"},
	{Code: "+592", Country: "Guyana"},
	{Code: "+593", Country: "Ecuador"},
	{Code: "+594", Country: "French Guiana"},
	{Code: "+595", Country: "Paraguay"},
	{Code: "+596", Country: "Martinique"},
	{Code: "+597", Country: "Suriname"},
	{Code: "+598", Country: "Uruguay"},
	{Code: "+599", Country: "Caribbean Netherlands"},
	{Code: "+670", Country: "Timor-Leste"},
	{Code: "+671", Country: "Northern Mariana Islands"},
	{Code: "+672", Country: "Australian External Territories"},
	{Code: "+673", Country: "Brunei"},
	{Code: "+674", Country: "Nauru"},
	{Code: "+675", Country: "Papua New Guinea"},
	{Code: "+676", Country: "Tonga"},
	{Code: "+677", Country: "Solomon Islands"},
	{Code: "+678", Country: "Vanuatu"},
	{Code: "+679", Country: "Fiji"},
	{Code: "+680", Country: "Palau"},
	{Code: "+681", Country: "Wallis & Futuna"},
	{Code: "+682", Country: "Cook Islands"},
	{Code: "+683", Country: "Niue"},
	{Code: "+685", Country: "Samoa"},
	{Code: "+686", Country: "Kiribati"},
	{Code: "+687", Country: "New Caledonia"},
	{Code: "+688", Country: "Tuvalu"},
	{Code: "+689", Country: "French Polynesia"},
	{Code: "+690", Country: "Tokelau"},
	{Code: "+691", Country: "Micronesia"},
	{Code: "+692", Country: "Marshall Islands"},
	{Code: "+850", Country: "North Korea"},
	{Code: "+852", Country: "Hong Kong"},
	{Code: "+853", Country: "Macau"},
	{Code: "+855", Country: "Cambodia"},
	{Code: "+856", Country: "Laos"},
	{Code: "+880", Country: "Bangladesh"},
	{Code: "+886", Country: "Taiwan"},
	{Code: "+960", Country: "Maldives"},
	{Code: "+961", Country: "Lebanon"},
	{Code: "+962", Country: "Jordan"},
	{Code: "+963", Country: "Syria"},
	{Code: "+964", Country: "Iraq"},
	{Code: "+965", Country: "Kuwait"},
	{Code: "+966", Country: "Saudi Arabia"},
	{Code: "+967", Country: "Yemen"},
	{Code: "+968", Country: "Oman"},
	{Code: "+970", Country: "Palestine"},
	{Code: "+971", Country: "United Arab Emirates"},
	{Code: "+972", Country: "Israel"},
	{Code: "+973", Country: "Bahrain"},
	{Code: "+974", Country: "Qatar"},
	{Code: "+975", Country: "Bhutan"},
	{Code: "+976", Country: "Mongolia"},
	{Code: "+977", Country: "Nepal"},
	{Code: "+994", Country: "Azerbaijan"},
	{Code: "+995", Country: "Georgia"},
	{Code: "+996", Country: "Kyrgyzstan"},
	{Code: "+998", Country: "Uzbekistan"},
}
