package storage

import "go.mongodb.org/mongo-driver/bson"

// Typed filter builders, one per filterable entity. Each produces an
// equality-only filter; an empty argument means no filtering.

func SiteFilter() bson.M {
	return bson.M{}
}

func AssetFilter(siteID string) bson.M {
	if siteID == "" {
		return bson.M{}
	}
	return bson.M{"site_id": siteID}
}

func JobFilter(status string) bson.M {
	if status == "" {
		return bson.M{}
	}
	return bson.M{"status": status}
}

func InvoiceFilter(status string) bson.M {
	if status == "" {
		return bson.M{}
	}
	return bson.M{"status": status}
}

func UserFilter(email string) bson.M {
	if email == "" {
		return bson.M{}
	}
	return bson.M{"email": email}
}
