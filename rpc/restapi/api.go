// Package restapi provides RESTful RPC service.
package restapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/3dpass/bridge-core/eventstore"
	"github.com/3dpass/bridge-core/internal/discover"
	"github.com/3dpass/bridge-core/params"
	"github.com/gorilla/mux"
)

func writeResponse(w http.ResponseWriter, resp interface{}, err error) {
	if err == nil {
		jsonData, _ := json.Marshal(resp)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(jsonData)
	} else {
		fmt.Fprintln(w, err.Error())
	}
}

// VersionInfoHandler handler
func VersionInfoHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	version := params.VersionWithMeta
	writeResponse(w, version, nil)
}

// ServerInfoHandler handler
func ServerInfoHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	res, err := discover.GetServerInfo()
	writeResponse(w, res, err)
}

// DetectBridgeHandler handler
func DetectBridgeHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	w.WriteHeader(http.StatusOK)
	res, err := discover.DetectBridge(vars["network"], vars["address"])
	writeResponse(w, res, err)
}

// BridgeInfoHandler handler
func BridgeInfoHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	w.WriteHeader(http.StatusOK)
	fallbackToken := r.URL.Query().Get("fallbackToken")
	res, err := discover.AggregateBridge(vars["network"], vars["address"], fallbackToken)
	writeResponse(w, res, err)
}

// ScanRegistryHandler handler
func ScanRegistryHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	w.WriteHeader(http.StatusOK)
	res, err := discover.ScanRegistry(vars["network"])
	writeResponse(w, res, err)
}

// KnownBridgesHandler handler
func KnownBridgesHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	writeResponse(w, discover.KnownBridges().All(), nil)
}

// ClaimBridgeHandler handler
func ClaimBridgeHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	w.WriteHeader(http.StatusOK)
	res, err := discover.FindClaimBridge(vars["address"])
	writeResponse(w, res, err)
}

// ResolveTokenHandler handler
func ResolveTokenHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	w.WriteHeader(http.StatusOK)
	res := discover.ResolveToken(vars["network"], vars["address"])
	writeResponse(w, res, nil)
}

// EventSnapshotHandler handler
func EventSnapshotHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	res, err := discover.GetEventSnapshot()
	writeResponse(w, res, err)
}

func decodeEventRecord(r *http.Request) (*eventstore.Record, error) {
	var record eventstore.Record
	err := json.NewDecoder(r.Body).Decode(&record)
	if err != nil {
		return nil, fmt.Errorf("wrong event record: %w", err)
	}
	return &record, nil
}

// PostTransferEventHandler handler
func PostTransferEventHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	record, err := decodeEventRecord(r)
	if err != nil {
		writeResponse(w, nil, err)
		return
	}
	err = discover.AddTransferEvent(record)
	writeResponse(w, discover.SuccessPostResult, err)
}

// PostClaimEventHandler handler
func PostClaimEventHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	record, err := decodeEventRecord(r)
	if err != nil {
		writeResponse(w, nil, err)
		return
	}
	err = discover.AddClaimEvent(record)
	writeResponse(w, discover.SuccessPostResult, err)
}
