package share

// templates maps each supported network to its share URL. Placeholders
// reference parameter names: %url$s, %title$s, %hashtags$s.
var templates = map[Network]string{
	Facebook: "https://www.facebook.com/share.php?src=bm&v=4&i=1407332352&u=%url$s&t=%title$s",
	Twitter:  "http://twitter.com/share?text=%title$s&url=%url$s&hashtags=%hashtags$s",
	Google:   "https://plus.google.com/share?url=%url$s",
}

// defaults holds optional parameters per network.
var defaults = map[Network]*Params{
	Twitter: NewParams("hashtags", ""),
}
