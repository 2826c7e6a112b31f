/*
	Project: Masomo UI helpers - display formatting for the Masomo school platform (https://masomo.cd)
	Consumers: parent quiz listings, admin absence listings.
*/
package masomoui

/*
TODO: FormatDateTime: localized AM/PM markers. locales.Translator does not expose day periods, so "AM"/"PM" stay english.
TODO: register ln_CD & sw_CD once the quiz payloads carry the user's locale.

FE contract:
	- dates: "YYYY-MM-DD" or RFC 3339, civil dates read in the configured timezone
	- times: "HH:MM" (24h)
	- attachments: MIME type string
*/
