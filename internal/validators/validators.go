package validators

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var (
	phonePattern       = regexp.MustCompile(`^[0-9+\-() ]{7,20}$`)
	orderNumberPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{2,63}$`)
)

// CheckEmail - адрес без отображаемого имени и с доменом
func CheckEmail(email string) bool {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at > 0 && at < len(email)-1
}

// CheckURL - абсолютный http(s) адрес с хостом
func CheckURL(raw string) bool {
	u, err := url.ParseRequestURI(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// CheckPhone - пустой телефон допустим
func CheckPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	return phone == "" || phonePattern.MatchString(phone)
}

// CheckOrderNumber - номер заказа витрины
func CheckOrderNumber(number string) bool {
	return orderNumberPattern.MatchString(number)
}
